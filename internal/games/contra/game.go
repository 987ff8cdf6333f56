// Package contra implements a Contra-style side-scrolling stage: the player
// runs along a row of blocks, jumps and shoots the enemies standing between
// them. The stage is cleared when every enemy is down.
package contra

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-contra/internal/assets"
	"github.com/vovakirdan/tui-contra/internal/audio"
	"github.com/vovakirdan/tui-contra/internal/camera"
	"github.com/vovakirdan/tui-contra/internal/config"
	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/games/contra/entity"
	"github.com/vovakirdan/tui-contra/internal/games/contra/player"
	"github.com/vovakirdan/tui-contra/internal/physics"
	"github.com/vovakirdan/tui-contra/internal/registry"
)

// ID is the registry identifier of the stage.
const ID = "contra"

// PointsPerKill is added to the score for every enemy destroyed.
const PointsPerKill = 100

// Options configure a new game. The zero value loads the config through
// the normal search order with no audio.
type Options struct {
	ConfigPath string
	Preset     config.DifficultyPreset
	Config     *config.ContraConfig // Used as-is when set; ConfigPath is ignored
	Audio      *audio.Player
}

var defaults Options

// SetConfigPath sets the custom config path used by games the registry
// creates.
func SetConfigPath(path string) {
	defaults.ConfigPath = path
}

// SetDifficultyPreset sets the difficulty preset used by games the registry
// creates. Unknown names fall back to the config's own settings.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		defaults.Preset = ""
		return
	}
	defaults.Preset = p
}

// SetAudio sets the audio player used by games the registry creates.
// Pass nil for silent games, as the SSH server does.
func SetAudio(p *audio.Player) {
	defaults.Audio = p
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(defaults)
	})
}

// Game is the stage context. It owns the player, the entity groups, the
// static level geometry and the camera; nothing is shared between games.
type Game struct {
	opts    Options
	runtime core.RuntimeConfig
	cfg     config.ContraConfig
	logger  *log.Logger

	assets     *assets.Manager
	camera     camera.Camera
	camSet     camera.Settings
	difficulty *config.DifficultyManager

	player  *player.Player
	bullets *entity.BulletGroup
	enemies *entity.EnemyGroup
	static  []physics.AABB
	window  mgl32.Vec2

	music *audio.Instance

	score      int
	kills      int
	shots      int
	ticks      int
	enemyTotal int
	paused     bool
	gameOver   bool
	cleared    bool
	debug      bool
}

// New creates a game with the given options.
func New(opts Options) *Game {
	return &Game{
		opts:   opts,
		logger: log.Default().WithPrefix(ID),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Contra"
}

// Reset builds or rebuilds the stage.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if g.assets == nil {
		m, err := assets.LoadDefault()
		if err != nil {
			panic(err)
		}
		g.assets = m
	}

	g.camera = newCamera(g.cfg.Camera)
	g.camSet = camera.Settings{
		FollowLerp: g.cfg.Camera.FollowLerp,
		Lead:       g.cfg.Camera.Lead,
		PanStep:    g.cfg.Camera.PanStep,
		ZoomStep:   g.cfg.Camera.ZoomStep,
	}
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	if g.bullets != nil {
		g.bullets.Shutdown()
	}
	if g.enemies != nil {
		g.enemies.Shutdown()
	}
	bullet := g.assets.Animation("bullet").Frames[0]
	g.bullets = entity.NewBulletGroup(bullet, g.cfg.Bullets.Speed, g.cfg.Bullets.PixelsPerUnit)
	g.enemies = entity.NewEnemyGroup(g.assets.Animation("red_guy_running"), g.cfg.Level.Enemies.PixelsPerUnit)

	g.static = Blocks(g.cfg.Level)
	enemyCount := g.difficulty.EnemyCount(g.cfg.Level.Enemies.Count)
	for _, pos := range EnemyPositions(g.cfg.Level, enemyCount) {
		g.enemies.Add(entity.EnemySpawn{Position: pos})
	}

	g.player = player.New(g.cfg.Player, g.assets)
	g.camera.Snap(g.player.Position().X(), g.camSet)

	g.score = 0
	g.kills = 0
	g.shots = 0
	g.ticks = 0
	g.enemyTotal = g.enemies.Len()
	g.paused = false
	g.gameOver = false
	g.cleared = false
	g.debug = runtime.Debug

	g.startMusic()

	g.logger.Debug("stage reset",
		"blocks", len(g.static),
		"enemies", g.enemyTotal,
		"difficulty", g.difficulty.Level(0, 0),
	)
}

func (g *Game) loadConfig() config.ContraConfig {
	var cfg config.ContraConfig
	if g.opts.Config != nil {
		cfg = *g.opts.Config
	} else {
		loaded, err := config.LoadContra(g.opts.ConfigPath)
		if err != nil {
			g.logger.Warn("using default config", "path", g.opts.ConfigPath, "err", err)
			loaded = config.DefaultContraConfig()
		}
		cfg = loaded
	}

	if g.opts.Preset != "" {
		config.ApplyContraPreset(&cfg, g.opts.Preset)
	}
	return cfg
}

func newCamera(cfg config.CameraConfig) camera.Camera {
	cam := camera.Default()
	cam.Position = mgl32.Vec3(cfg.Position)
	cam.FOV = cfg.FOV
	cam.Near = cfg.Near
	cam.Far = cfg.Far
	cam.SetZoom(cfg.OrthoScale)
	cam.CellAspect = cfg.CellAspect
	if cfg.Projection == camera.Perspective.String() {
		cam.Projection = camera.Perspective
	}
	return cam
}

func (g *Game) startMusic() {
	if g.opts.Audio == nil {
		return
	}
	if g.music != nil {
		g.music.Stop()
	}
	src, err := g.assets.Lookup(assets.KindAudio, g.cfg.Audio.Music)
	if err != nil {
		g.logger.Warn("no background music", "err", err)
		return
	}
	g.music = g.opts.Audio.Play(src.(*assets.AudioSource), audio.Options{
		Volume: g.cfg.Audio.MusicVolume,
		Loop:   true,
	})
}

func (g *Game) playEffect(name string) {
	if g.opts.Audio == nil || name == "" {
		return
	}
	src, err := g.assets.Lookup(assets.KindAudio, name)
	if err != nil {
		return
	}
	g.opts.Audio.Play(src.(*assets.AudioSource), audio.Options{Volume: g.cfg.Audio.EffectsVolume})
}

// world returns the stage view the archetypes read during a tick.
func (g *Game) world() entity.World {
	return entity.World{
		Static:      g.static,
		GroundLevel: g.cfg.Level.GroundLevel,
		Camera:      &g.camera,
		Window:      g.window,
	}
}

// Step advances the stage by one tick: camera, player, bullets, enemies,
// then scoring.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.music != nil {
			if g.paused {
				g.music.SetVolume(0)
			} else {
				g.music.SetVolume(g.cfg.Audio.MusicVolume)
			}
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	g.camera.Update(in, g.player.Position().X(), g.camSet)

	world := g.world()
	interval := g.difficulty.FireInterval(g.cfg.Player.FireInterval, g.score, g.ticks)
	pr := g.player.Update(in, player.Frame{
		World:        world,
		Bullets:      g.bullets,
		Dt:           g.runtime.TickSeconds(),
		FireInterval: interval,
	})
	if pr.Shots > 0 {
		g.shots += pr.Shots
		g.playEffect(g.cfg.Audio.Shot)
	}

	br := g.bullets.Update(world, g.enemies)
	kills := len(br.EnemyHits)
	if kills > 0 {
		g.kills += kills
		g.score += kills * PointsPerKill
		g.playEffect(g.cfg.Audio.EnemyDown)
	}

	g.enemies.Update(world)

	if g.enemyTotal > 0 && g.enemies.Len() == 0 {
		g.cleared = true
		g.gameOver = true
		g.logger.Info("stage cleared", "score", g.score, "ticks", g.ticks, "shots", g.shots)
	}

	return core.StepResult{
		State: g.State(),
		Shots: pr.Shots,
		Kills: kills,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Cleared:  g.cleared,
		Paused:   g.paused,
	}
}

// Resize sets the viewport, in cells, that bullets are culled against.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.window = mgl32.Vec2{float32(width), float32(height)}
}

// Close stops the stage's audio.
func (g *Game) Close() {
	if g.music != nil {
		g.music.Stop()
		g.music = nil
	}
}

// Player returns the player entity.
func (g *Game) Player() *player.Player {
	return g.player
}

// Bullets returns the bullet group.
func (g *Game) Bullets() *entity.BulletGroup {
	return g.bullets
}

// Enemies returns the enemy group.
func (g *Game) Enemies() *entity.EnemyGroup {
	return g.enemies
}

// Camera returns the stage camera.
func (g *Game) Camera() *camera.Camera {
	return &g.camera
}

// Static returns the level geometry.
func (g *Game) Static() []physics.AABB {
	return g.static
}
