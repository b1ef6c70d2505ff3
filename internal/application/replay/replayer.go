package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/windup/internal/application/system"
)

// Replayer plays recorded input back as a system.InputSource
type Replayer struct {
	data    ReplayData
	frame   int
	current system.InputState
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Advance loads the next recorded frame. It returns false once every
// frame has been played; the input then reads as nothing held.
func (r *Replayer) Advance() bool {
	if r.frame >= len(r.data.Frames) {
		r.current = system.InputState{}
		return false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	r.current = system.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Jump:   fi.J,
		Windup: fi.W,
	}
	return true
}

// IsHeld implements system.InputSource for the current frame
func (r *Replayer) IsHeld(action system.Action) bool {
	return r.current.IsHeld(action)
}

// Input returns the current frame's snapshot
func (r *Replayer) Input() system.InputState {
	return r.current
}

// CurrentFrame returns the number of frames played so far
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.current = system.InputState{}
}

// FrameFromInput converts a snapshot into a recorded frame
func FrameFromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F: frame,
		L: in.Left,
		R: in.Right,
		J: in.Jump,
		W: in.Windup,
	}
}

// CreateTestReplayData creates replay data holding the given actions on every frame
func CreateTestReplayData(frames int, held ...system.Action) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Seed:      12345,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	var in system.InputState
	for _, a := range held {
		switch a {
		case system.ActionLeft:
			in.Left = true
		case system.ActionRight:
			in.Right = true
		case system.ActionJump:
			in.Jump = true
		case system.ActionWindup:
			in.Windup = true
		}
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameFromInput(i, in)
	}

	return data
}
