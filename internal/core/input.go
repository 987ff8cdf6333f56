package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - run left
	ActionRight           // D, Right arrow - run right
	ActionUp              // W, Up arrow - aim up
	ActionDown            // S, Down arrow - aim down / prone
	ActionJump            // Space - jump
	ActionFire            // J, F - shoot
	ActionZoomIn          // E - camera ortho scale down
	ActionZoomOut         // Q - camera ortho scale up
	ActionPanLeft         // H - debug camera pan
	ActionPanRight        // L - debug camera pan
	ActionPanUp           // K - debug camera pan
	ActionPanDown         // N - debug camera pan
	ActionDebug           // Tab, F1 - toggle debug overlay
	ActionConfirm         // Enter - confirm
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Ctrl+C - exit game/session
	ActionPause           // P, Escape - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionJump:     "Jump",
	ActionFire:     "Fire",
	ActionZoomIn:   "ZoomIn",
	ActionZoomOut:  "ZoomOut",
	ActionPanLeft:  "PanLeft",
	ActionPanRight: "PanRight",
	ActionPanUp:    "PanUp",
	ActionPanDown:  "PanDown",
	ActionDebug:    "Debug",
	ActionConfirm:  "Confirm",
	ActionRestart:  "Restart",
	ActionQuit:     "Quit",
	ActionPause:    "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state of one simulation tick.
//
// An action can be pressed (went down this tick), held (is down this tick,
// including the tick it was pressed) and released (went up this tick).
// Movement reads held state; jumping and toggles read presses.
type InputFrame struct {
	pressed  map[Action]bool
	held     map[Action]bool
	released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		pressed:  make(map[Action]bool),
		held:     make(map[Action]bool),
		released: make(map[Action]bool),
	}
}

func (f *InputFrame) ensure() {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	if f.released == nil {
		f.released = make(map[Action]bool)
	}
}

// Set marks an action as pressed, and therefore held, for this frame.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.pressed[a] = true
	f.held[a] = true
}

// Hold marks an action as held without a new press.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.held[a] = true
}

// Release marks an action as released this frame.
func (f *InputFrame) Release(a Action) {
	f.ensure()
	f.released[a] = true
	delete(f.held, a)
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.pressed[a]
}

// Down returns true if the given action is held this frame.
func (f InputFrame) Down(a Action) bool {
	return f.held[a]
}

// Released returns true if the given action went up this frame.
func (f InputFrame) Released(a Action) bool {
	return f.released[a]
}

// Axis returns -1, 0 or +1 from two opposing held actions.
func (f InputFrame) Axis(neg, pos Action) float32 {
	var v float32
	if f.Down(neg) {
		v--
	}
	if f.Down(pos) {
		v++
	}
	return v
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.pressed)
	clear(f.held)
	clear(f.released)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.pressed {
		c.pressed[k] = v
	}
	for k, v := range f.held {
		c.held[k] = v
	}
	for k, v := range f.released {
		c.released[k] = v
	}
	return c
}
