package system

// SoundState is the playback state of a sound instance
type SoundState int

const (
	SoundStopped SoundState = iota
	SoundPlaying
)

func (s SoundState) String() string {
	if s == SoundPlaying {
		return "playing"
	}
	return "stopped"
}

// SoundInstance is an owned handle to a restartable sound
type SoundInstance interface {
	Play()
	Stop()
	State() SoundState
	SetVolume(volume float64)
	Close() error
}

// SoundBank creates sound instances by clip
type SoundBank interface {
	NewInstance(clip SoundClip) SoundInstance
}

// NopSoundBank hands out silent instances
type NopSoundBank struct{}

// NewInstance implements SoundBank
func (NopSoundBank) NewInstance(SoundClip) SoundInstance {
	return &nopInstance{}
}

type nopInstance struct{}

func (*nopInstance) Play()             {}
func (*nopInstance) Stop()             {}
func (*nopInstance) State() SoundState { return SoundStopped }
func (*nopInstance) SetVolume(float64) {}
func (*nopInstance) Close() error      { return nil }
