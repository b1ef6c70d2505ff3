package playing

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/younwookim/windup/internal/application/system"
	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

const (
	particleLife    = 0.5 // seconds
	particleGravity = 0.15
	maxParticles    = 512
)

// Audio plays one-shot clips and hands out owned instances.
// *audio.Bank implements it.
type Audio interface {
	system.SoundBank
	Play(clip system.SoundClip, volume float64)
}

type silentAudio struct{ system.NopSoundBank }

func (silentAudio) Play(system.SoundClip, float64) {}

type particle struct {
	pos   entity.Vec2
	vel   entity.Vec2
	life  float64
	color colorful.Color
}

// alpha fades linearly over the particle's life
func (p particle) alpha() float64 {
	return p.life / particleLife
}

// presenter turns drained controller effects into particles, the body
// animation and one-shot sounds
type presenter struct {
	audio     Audio
	rng       *rand.Rand
	particles []particle

	anims map[system.AnimationClip]*system.Animation
	clip  system.AnimationClip
}

func newPresenter(sprite config.SpriteConfig, audio Audio, rng *rand.Rand) *presenter {
	p := &presenter{
		audio: audio,
		rng:   rng,
		anims: make(map[system.AnimationClip]*system.Animation),
		clip:  system.ClipStanding,
	}
	for name, cfg := range sprite.Animations {
		p.anims[system.AnimationClip(name)] = system.NewAnimation(cfg)
	}
	return p
}

func (p *presenter) apply(effects []system.Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case system.AnimationEffect:
			p.play(e.Clip)
		case system.SoundEffect:
			p.audio.Play(e.Clip, e.Volume)
		case system.ParticleEffect:
			p.burst(e)
		}
	}
}

func (p *presenter) play(clip system.AnimationClip) {
	if p.clip == clip {
		return
	}
	p.clip = clip
	if a, ok := p.anims[clip]; ok {
		a.Restart()
	}
}

func (p *presenter) burst(e system.ParticleEffect) {
	c, _ := colorful.MakeColor(e.Color)
	for i := 0; i < e.Count && len(p.particles) < maxParticles; i++ {
		p.particles = append(p.particles, particle{
			pos: entity.Vec2{
				X: e.Origin.X + (p.rng.Float64()*2-1)*e.Spread,
				Y: e.Origin.Y + (p.rng.Float64()*2-1)*e.Spread/2,
			},
			vel: entity.Vec2{
				X: (p.rng.Float64()*2 - 1) * 1.5,
				Y: -p.rng.Float64() * 2,
			},
			life:  particleLife * (0.5 + p.rng.Float64()/2),
			color: c,
		})
	}
}

func (p *presenter) update(dt float64) {
	if a, ok := p.anims[p.clip]; ok {
		a.Update(dt)
	}

	alive := p.particles[:0]
	for _, pt := range p.particles {
		pt.life -= dt
		if pt.life <= 0 {
			continue
		}
		pt.vel.Y += particleGravity
		pt.pos = pt.pos.Add(pt.vel)
		alive = append(alive, pt)
	}
	p.particles = alive
}

// frame returns the current frame of the body animation
func (p *presenter) frame() int {
	if a, ok := p.anims[p.clip]; ok {
		return a.Frame()
	}
	return 0
}

func (p *presenter) reset() {
	p.particles = p.particles[:0]
	p.clip = system.ClipStanding
	for _, a := range p.anims {
		a.Restart()
	}
}
