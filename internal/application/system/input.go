package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Action is a logical input the controller reacts to
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
	ActionWindup
)

// Actions lists every action in recording order
var Actions = []Action{ActionLeft, ActionRight, ActionJump, ActionWindup}

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionWindup:
		return "windup"
	default:
		return "unknown"
	}
}

// InputSource reports whether an action is held this frame
type InputSource interface {
	IsHeld(action Action) bool
}

// Direction is the resolved horizontal intent for one tick
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// InputState is one frame's snapshot of every action
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Windup bool
}

// ReadInput snapshots src
func ReadInput(src InputSource) InputState {
	if src == nil {
		return InputState{}
	}
	return InputState{
		Left:   src.IsHeld(ActionLeft),
		Right:  src.IsHeld(ActionRight),
		Jump:   src.IsHeld(ActionJump),
		Windup: src.IsHeld(ActionWindup),
	}
}

// IsHeld reports the state of a single action, so a snapshot is itself an InputSource
func (s InputState) IsHeld(action Action) bool {
	switch action {
	case ActionLeft:
		return s.Left
	case ActionRight:
		return s.Right
	case ActionJump:
		return s.Jump
	case ActionWindup:
		return s.Windup
	default:
		return false
	}
}

// Direction resolves the held horizontal keys.
// Right is checked first and wins when both are held.
func (s InputState) Direction() Direction {
	if s.Right {
		return DirectionRight
	}
	if s.Left {
		return DirectionLeft
	}
	return DirectionNone
}

// KeyboardInput polls the keyboard through ebiten
type KeyboardInput struct {
	bindings map[Action][]ebiten.Key
}

// NewKeyboardInput creates a keyboard source with the default bindings
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		bindings: map[Action][]ebiten.Key{
			ActionLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
			ActionRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
			ActionJump:   {ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
			ActionWindup: {ebiten.KeyS, ebiten.KeyArrowDown},
		},
	}
}

// Bind replaces the keys bound to an action
func (k *KeyboardInput) Bind(action Action, keys ...ebiten.Key) {
	k.bindings[action] = keys
}

// IsHeld implements InputSource
func (k *KeyboardInput) IsHeld(action Action) bool {
	for _, key := range k.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
