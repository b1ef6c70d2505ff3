package system

import "github.com/younwookim/windup/internal/infrastructure/config"

// Animation steps through a clip's frames at a fixed speed.
// It can run in reverse and be paused.
type Animation struct {
	Frames     int
	FrameSpeed float64 // seconds per frame
	Loop       bool

	Reverse bool
	Paused  bool

	frame   int
	timer   float64
	playing bool
}

// NewAnimation creates a playing animation from its config
func NewAnimation(cfg config.AnimationConfig) *Animation {
	frames := cfg.Frames
	if frames < 1 {
		frames = 1
	}
	return &Animation{
		Frames:     frames,
		FrameSpeed: cfg.FrameSpeed,
		Loop:       cfg.Loop,
		playing:    true,
	}
}

// Update advances the animation by dt seconds
func (a *Animation) Update(dt float64) {
	if !a.playing || a.Paused || a.FrameSpeed <= 0 {
		return
	}

	a.timer += dt
	for a.timer >= a.FrameSpeed && a.playing {
		a.timer -= a.FrameSpeed
		a.advance()
	}
}

func (a *Animation) advance() {
	next := a.frame + 1
	if a.Reverse {
		next = a.frame - 1
	}

	switch {
	case next >= a.Frames:
		if !a.Loop {
			a.playing = false
			return
		}
		next = 0
	case next < 0:
		if !a.Loop {
			a.playing = false
			return
		}
		next = a.Frames - 1
	}
	a.frame = next
}

// Restart rewinds to the first frame and plays
func (a *Animation) Restart() {
	a.frame = 0
	a.timer = 0
	a.playing = true
}

// Frame returns the current frame index
func (a *Animation) Frame() int {
	return a.frame
}

// IsPlaying is false once a non-looping animation has finished
func (a *Animation) IsPlaying() bool {
	return a.playing
}
