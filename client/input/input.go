package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a player command read from the input devices.
type Action int

const (
	ActionSave Action = iota
	ActionLoad
	ActionVolumeUp
	ActionVolumeDown
	ActionNextDifficulty
)

func (a Action) String() string {
	switch a {
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionVolumeUp:
		return "VolumeUp"
	case ActionVolumeDown:
		return "VolumeDown"
	case ActionNextDifficulty:
		return "NextDifficulty"
	}
	return "Unknown"
}

// Source reports the actions triggered during the current tick.
type Source interface {
	JustPressedActions() []Action
}

// KeyboardSource maps keys to actions:
// F5 save, F9 load, +/- effects volume, D difficulty.
type KeyboardSource struct {
	bindings map[ebiten.Key]Action
}

var _ Source = &KeyboardSource{}

func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{
		bindings: map[ebiten.Key]Action{
			ebiten.KeyF5:             ActionSave,
			ebiten.KeyF9:             ActionLoad,
			ebiten.KeyEqual:          ActionVolumeUp,
			ebiten.KeyNumpadAdd:      ActionVolumeUp,
			ebiten.KeyMinus:          ActionVolumeDown,
			ebiten.KeyNumpadSubtract: ActionVolumeDown,
			ebiten.KeyD:              ActionNextDifficulty,
		},
	}
}

func (s *KeyboardSource) JustPressedActions() []Action {
	var actions []Action
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if action, ok := s.bindings[key]; ok {
			actions = append(actions, action)
		}
	}
	return actions
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
