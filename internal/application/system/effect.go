package system

import (
	"image/color"

	"github.com/younwookim/windup/internal/domain/entity"
)

// AnimationClip names a body animation
type AnimationClip string

const (
	ClipStanding AnimationClip = "standing"
	ClipWalk     AnimationClip = "walk"
	ClipWindup   AnimationClip = "windup"
)

// SoundClip names a sound effect
type SoundClip string

const (
	SoundJump     SoundClip = "jump"
	SoundLand     SoundClip = "land"
	SoundWindup   SoundClip = "windup"
	SoundWindDown SoundClip = "winddown"
	SoundStep     SoundClip = "step"
	SoundHurt     SoundClip = "hurt"
)

// DustColor is the color of walking and landing dust
var DustColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Effect is a presentation request produced by a tick
type Effect interface {
	isEffect()
}

// AnimationEffect switches the body animation
type AnimationEffect struct {
	Clip AnimationClip
}

func (AnimationEffect) isEffect() {}

// SoundEffect plays a one-shot sound
type SoundEffect struct {
	Clip   SoundClip
	Volume float64
}

func (SoundEffect) isEffect() {}

// ParticleEffect requests a particle burst
type ParticleEffect struct {
	Origin entity.Vec2
	Color  color.RGBA
	Count  int
	Spread float64
}

func (ParticleEffect) isEffect() {}

// Effects queues the effects produced since the last Drain
type Effects struct {
	queue []Effect
	clip  AnimationClip
}

// NewEffects creates a queue whose body animation starts at clip
func NewEffects(clip AnimationClip) *Effects {
	return &Effects{clip: clip}
}

// Push appends an effect
func (e *Effects) Push(effect Effect) {
	e.queue = append(e.queue, effect)
}

// PlayAnimation queues an AnimationEffect when clip differs from the current one
func (e *Effects) PlayAnimation(clip AnimationClip) {
	if e.clip == clip {
		return
	}
	e.clip = clip
	e.Push(AnimationEffect{Clip: clip})
}

// Animation returns the current body animation
func (e *Effects) Animation() AnimationClip {
	return e.clip
}

// Drain returns and clears the queued effects
func (e *Effects) Drain() []Effect {
	out := e.queue
	e.queue = nil
	return out
}

// Len returns the number of queued effects
func (e *Effects) Len() int {
	return len(e.queue)
}
