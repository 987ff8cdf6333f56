// Package audio plays asset audio sources through a beep mixer.
//
// The simulation only issues fire-and-forget calls (play, set volume,
// stop). Samples are pulled by the speaker goroutine when output is
// enabled; without a speaker the mixer is simply never drained.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-contra/internal/assets"
)

// DefaultSampleRate is used when the player is created with a zero rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Options configure one playback.
type Options struct {
	Volume float64 // Linear volume in [0, 1]
	Loop   bool
}

// Player mixes any number of concurrently playing instances.
type Player struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	mixer     *beep.Mixer
	instances []*Instance
	logger    *log.Logger
	speaker   bool
}

// NewPlayer creates a player that renders at the given sample rate.
func NewPlayer(rate beep.SampleRate) *Player {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Player{
		rate:   rate,
		mixer:  &beep.Mixer{},
		logger: log.Default().WithPrefix("audio"),
	}
}

// SampleRate returns the output sample rate.
func (p *Player) SampleRate() beep.SampleRate {
	return p.rate
}

// Streamer returns the mixed output, guarded by the player lock.
func (p *Player) Streamer() beep.Streamer {
	return lockedStreamer{p: p}
}

// StartSpeaker opens the default audio device and starts pulling samples.
func (p *Player) StartSpeaker() error {
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.Streamer())

	p.mu.Lock()
	p.speaker = true
	p.mu.Unlock()
	p.logger.Info("speaker started", "rate", int(p.rate))
	return nil
}

// Close stops every instance and releases the audio device, if open.
func (p *Player) Close() {
	p.StopAll()

	p.mu.Lock()
	started := p.speaker
	p.speaker = false
	p.mu.Unlock()

	if started {
		speaker.Close()
	}
}

// Play starts src and returns a handle to control it.
func (p *Player) Play(src *assets.AudioSource, opts Options) *Instance {
	var s beep.Streamer = &clip{src: src, rate: p.rate}
	if opts.Loop {
		s = &looper{next: func() beep.Streamer { return &clip{src: src, rate: p.rate} }, cur: s}
	}

	inst := &Instance{p: p, name: src.Name}
	inst.volume = &effects.Volume{Streamer: &tracker{inst: inst, s: s}, Base: 2}
	inst.ctrl = &beep.Ctrl{Streamer: inst.volume}
	inst.applyVolume(opts.Volume)

	p.mu.Lock()
	p.prune()
	p.mixer.Add(inst.ctrl)
	p.instances = append(p.instances, inst)
	p.mu.Unlock()

	p.logger.Debug("play", "source", src.Name, "volume", opts.Volume, "loop", opts.Loop)
	return inst
}

// Active returns the number of instances still playing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prune()
	return len(p.instances)
}

func (p *Player) prune() {
	kept := p.instances[:0]
	for _, inst := range p.instances {
		if !inst.stopped && !inst.done {
			kept = append(kept, inst)
		}
	}
	for i := len(kept); i < len(p.instances); i++ {
		p.instances[i] = nil
	}
	p.instances = kept
}

// StopAll stops every instance.
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, inst := range p.instances {
		inst.stopLocked()
	}
	p.instances = nil
	p.mixer.Clear()
}

// Instance is one playing source.
type Instance struct {
	p       *Player
	name    string
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	stopped bool
	done    bool
}

// Name returns the qualified name of the source.
func (i *Instance) Name() string {
	return i.name
}

// SetVolume changes the linear volume. Zero silences the instance.
func (i *Instance) SetVolume(v float64) {
	i.p.mu.Lock()
	defer i.p.mu.Unlock()
	i.applyVolume(v)
}

// Volume returns the current linear volume.
func (i *Instance) Volume() float64 {
	i.p.mu.Lock()
	defer i.p.mu.Unlock()
	if i.volume.Silent {
		return 0
	}
	return math.Pow(2, i.volume.Volume)
}

// Stop silences the instance permanently.
func (i *Instance) Stop() {
	i.p.mu.Lock()
	defer i.p.mu.Unlock()
	i.stopLocked()
}

// Stopped reports whether Stop was called.
func (i *Instance) Stopped() bool {
	i.p.mu.Lock()
	defer i.p.mu.Unlock()
	return i.stopped
}

// Done reports whether a non-looping instance played to its end.
func (i *Instance) Done() bool {
	i.p.mu.Lock()
	defer i.p.mu.Unlock()
	return i.done
}

func (i *Instance) stopLocked() {
	i.stopped = true
	i.ctrl.Paused = true
	i.ctrl.Streamer = nil
}

func (i *Instance) applyVolume(v float64) {
	if v <= 0 {
		i.volume.Volume = 0
		i.volume.Silent = true
		return
	}
	i.volume.Volume = math.Log2(math.Min(v, 1))
	i.volume.Silent = false
}

type lockedStreamer struct {
	p *Player
}

func (l lockedStreamer) Stream(samples [][2]float64) (int, bool) {
	l.p.mu.Lock()
	defer l.p.mu.Unlock()
	return l.p.mixer.Stream(samples)
}

func (l lockedStreamer) Err() error { return nil }

// clip renders an AudioSource note by note.
type clip struct {
	src  *assets.AudioSource
	rate beep.SampleRate
	note int
	cur  beep.Streamer
}

func (c *clip) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		if c.cur == nil {
			if c.note >= len(c.src.Notes) {
				break
			}
			c.cur = noteStreamer(c.src, c.src.Notes[c.note], c.rate)
			c.note++
		}
		n, ok := c.cur.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			c.cur = nil
		}
	}
	return filled, filled > 0
}

func (c *clip) Err() error { return nil }

// tracker marks its instance done once the wrapped streamer drains.
// It runs inside the mixer, under the player lock.
type tracker struct {
	inst *Instance
	s    beep.Streamer
}

func (t *tracker) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.s.Stream(samples)
	if !ok {
		t.inst.done = true
	}
	return n, ok
}

func (t *tracker) Err() error { return nil }

// looper restarts a finished clip forever.
type looper struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

func (l *looper) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	restarted := false
	for filled < len(samples) {
		n, ok := l.cur.Stream(samples[filled:])
		filled += n
		if n > 0 {
			restarted = false
		}
		if ok && n > 0 {
			continue
		}
		if restarted {
			// A clip with no samples would spin forever.
			return filled, filled > 0
		}
		l.cur = l.next()
		restarted = true
	}
	return filled, true
}

func (l *looper) Err() error { return nil }

// noteStreamer returns one tempo-long note. Zero or invalid frequencies
// produce silence.
func noteStreamer(src *assets.AudioSource, freq float64, rate beep.SampleRate) beep.Streamer {
	n := rate.N(src.Tempo)
	if freq <= 0 || freq >= float64(rate)/2 {
		return beep.Silence(n)
	}

	switch src.Wave {
	case assets.WaveSquare:
		return beep.Take(n, &square{freq: freq, rate: rate})
	default:
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return beep.Silence(n)
		}
		return beep.Take(n, tone)
	}
}

// square is an endless square wave.
type square struct {
	freq  float64
	rate  beep.SampleRate
	phase float64
}

func (s *square) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := -1.0
		if s.phase < 0.5 {
			v = 1.0
		}
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }
