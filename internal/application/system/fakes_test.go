package system

import (
	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

type mapInput map[Action]bool

func (m mapInput) IsHeld(action Action) bool { return m[action] }

type fakeSound struct {
	clip   SoundClip
	state  SoundState
	volume float64
	plays  int
	stops  int
	closed bool
}

func (f *fakeSound) Play()                    { f.plays++; f.state = SoundPlaying }
func (f *fakeSound) Stop()                    { f.stops++; f.state = SoundStopped }
func (f *fakeSound) State() SoundState        { return f.state }
func (f *fakeSound) SetVolume(volume float64) { f.volume = volume }
func (f *fakeSound) Close() error             { f.closed = true; return nil }

type fakeBank struct {
	instances map[SoundClip]*fakeSound
}

func newFakeBank() *fakeBank {
	return &fakeBank{instances: make(map[SoundClip]*fakeSound)}
}

func (b *fakeBank) NewInstance(clip SoundClip) SoundInstance {
	s := &fakeSound{clip: clip}
	b.instances[clip] = s
	return s
}

type drawCall struct {
	box         entity.Rect
	clip        AnimationClip
	frame       int
	facingRight bool
}

type fakeFrame struct {
	bodies []drawCall
	keys   []drawCall
}

func (f *fakeFrame) DrawBody(box entity.Rect, clip AnimationClip, facingRight bool) {
	f.bodies = append(f.bodies, drawCall{box: box, clip: clip, facingRight: facingRight})
}

func (f *fakeFrame) DrawKey(box entity.Rect, frame int, facingRight bool) {
	f.keys = append(f.keys, drawCall{box: box, frame: frame, facingRight: facingRight})
}

func createTestConfig() *config.PhysicsConfig {
	return config.Default()
}

func createTestPlayer(cfg *config.PhysicsConfig) *entity.Player {
	p := SpawnPlayer(cfg, 50, 52)
	p.Alive = cfg.Meter.Max
	return p
}

// createTestGround is a floor whose top is at y=100
func createTestGround() *entity.Obstacle {
	return &entity.Obstacle{ID: 1, Kind: entity.KindSolid, Box: entity.Rect{X: 0, Y: 100, W: 1000, H: 32}}
}

func soundClips(effects []Effect) []SoundClip {
	var out []SoundClip
	for _, e := range effects {
		if s, ok := e.(SoundEffect); ok {
			out = append(out, s.Clip)
		}
	}
	return out
}

func particleBursts(effects []Effect) []ParticleEffect {
	var out []ParticleEffect
	for _, e := range effects {
		if p, ok := e.(ParticleEffect); ok {
			out = append(out, p)
		}
	}
	return out
}
