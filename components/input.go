package components

import (
	cfg "github.com/automoto/starblaster/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// IntentData is the per-frame input snapshot. JustPressed/JustReleased are
// derived by comparing Current against Previous.
type IntentData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

var Intent = donburi.NewComponentType[IntentData]()

// Action returns the temporal state of a single action.
func (i *IntentData) Action(action cfg.ActionID) ActionState {
	cur, prev := i.Current[action], i.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Push starts a new frame with the given pressed actions.
func (i *IntentData) Push(pressed ...cfg.ActionID) {
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
	for _, a := range pressed {
		i.Current[a] = true
	}
}
