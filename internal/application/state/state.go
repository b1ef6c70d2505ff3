package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Motion is the controller's motion mode, derived once per tick
type Motion int

const (
	MotionIdle Motion = iota
	MotionMoving
	MotionJumping
	MotionFalling
	MotionWindingUp
	MotionRemoved
)

// String returns the string representation of the motion mode
func (m Motion) String() string {
	switch m {
	case MotionIdle:
		return "Idle"
	case MotionMoving:
		return "Moving"
	case MotionJumping:
		return "Jumping"
	case MotionFalling:
		return "Falling"
	case MotionWindingUp:
		return "WindingUp"
	case MotionRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Grounded reports whether the mode implies standing on support
func (m Motion) Grounded() bool {
	return m == MotionIdle || m == MotionMoving || m == MotionWindingUp
}

// transitions lists the allowed edges of the motion state machine.
// Staying in the same mode is always allowed.
var transitions = map[Motion][]Motion{
	MotionIdle:      {MotionMoving, MotionJumping, MotionFalling, MotionWindingUp, MotionRemoved},
	MotionMoving:    {MotionIdle, MotionJumping, MotionFalling, MotionRemoved},
	MotionJumping:   {MotionFalling, MotionIdle, MotionMoving, MotionRemoved},
	MotionFalling:   {MotionIdle, MotionMoving, MotionRemoved},
	MotionWindingUp: {MotionIdle, MotionMoving, MotionJumping, MotionFalling, MotionRemoved},
	MotionRemoved:   nil,
}

// CanTransition reports whether from -> to is an edge of the motion machine
func CanTransition(from, to Motion) bool {
	if from == to {
		return true
	}
	for _, m := range transitions[from] {
		if m == to {
			return true
		}
	}
	return false
}
