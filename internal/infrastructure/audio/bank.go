package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/windup/internal/application/system"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

const sampleRate = beep.SampleRate(44100)

// Bank synthesizes the configured clips into one mixer. It implements
// system.SoundBank for owned instances and plays one-shot effects.
//
// The mixer is streamed by the speaker goroutine once Start is called;
// every mixer and instance mutation happens under mu.
type Bank struct {
	mu      sync.Mutex
	clips   map[system.SoundClip]config.SoundClipConfig
	mixer   *beep.Mixer
	rate    beep.SampleRate
	master  float64
	started bool
}

// NewBank creates a bank for the clips in entities.json
func NewBank(clips map[string]config.SoundClipConfig) *Bank {
	b := &Bank{
		clips:  make(map[system.SoundClip]config.SoundClipConfig, len(clips)),
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		master: 1,
	}
	for name, clip := range clips {
		b.clips[system.SoundClip(name)] = clip
	}
	return b
}

// Start opens the audio device and begins streaming the mixer
func (b *Bank) Start() error {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()

	if err := speaker.Init(b.rate, b.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b)

	b.mu.Lock()
	b.started = true
	b.mu.Unlock()
	return nil
}

// SetMasterVolume scales every sound started afterwards
func (b *Bank) SetMasterVolume(volume float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.master = volume
}

// Play starts a one-shot clip. Unknown clips are ignored.
func (b *Bank) Play(clip system.SoundClip, volume float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cfg, ok := b.clips[clip]
	if !ok {
		return
	}
	b.mixer.Add(synthesize(cfg, volume*b.master, b.rate))
}

// NewInstance implements system.SoundBank
func (b *Bank) NewInstance(clip system.SoundClip) system.SoundInstance {
	return &instance{bank: b, clip: clip, volume: 1}
}

// Active returns how many streams are in the mixer
func (b *Bank) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mixer.Len()
}

// Stop silences everything currently playing
func (b *Bank) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mixer.Clear()
}

// Stream implements beep.Streamer. The mixer never drains, so the
// speaker keeps receiving silence between sounds.
func (b *Bank) Stream(samples [][2]float64) (n int, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, _ = b.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (b *Bank) Err() error { return nil }

// instance is a restartable handle on one clip. Its state is guarded by
// the bank's mutex; the end-of-clip callback runs inside Bank.Stream
// with that mutex already held.
type instance struct {
	bank    *Bank
	clip    system.SoundClip
	volume  float64
	ctrl    *beep.Ctrl
	playing bool
	closed  bool
}

func (i *instance) Play() {
	b := i.bank
	b.mu.Lock()
	defer b.mu.Unlock()

	cfg, ok := b.clips[i.clip]
	if !ok || i.closed {
		return
	}
	if i.ctrl != nil {
		i.ctrl.Streamer = nil
	}

	ctrl := &beep.Ctrl{}
	ctrl.Streamer = beep.Seq(
		synthesize(cfg, i.volume*b.master, b.rate),
		beep.Callback(func() {
			if i.ctrl == ctrl {
				i.playing = false
			}
		}),
	)
	i.ctrl = ctrl
	i.playing = true
	b.mixer.Add(ctrl)
}

func (i *instance) Stop() {
	i.bank.mu.Lock()
	defer i.bank.mu.Unlock()
	i.stop()
}

func (i *instance) stop() {
	if i.ctrl != nil {
		i.ctrl.Streamer = nil
		i.ctrl = nil
	}
	i.playing = false
}

func (i *instance) State() system.SoundState {
	i.bank.mu.Lock()
	defer i.bank.mu.Unlock()
	if i.playing {
		return system.SoundPlaying
	}
	return system.SoundStopped
}

func (i *instance) SetVolume(volume float64) {
	i.bank.mu.Lock()
	defer i.bank.mu.Unlock()
	i.volume = volume
}

func (i *instance) Close() error {
	i.bank.mu.Lock()
	defer i.bank.mu.Unlock()
	i.stop()
	i.closed = true
	return nil
}
