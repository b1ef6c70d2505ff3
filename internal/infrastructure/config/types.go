package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Physics   PhysicsSettings `json:"physics"`
	Movement  MovementConfig  `json:"movement"`
	Fall      FallConfig      `json:"fall"`
	Jump      JumpConfig      `json:"jump"`
	Meter     MeterConfig     `json:"meter"`
	Collision CollisionConfig `json:"collision"`
	Feedback  FeedbackConfig  `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// PhysicsSettings holds the world constants. Speeds are pixels per tick.
type PhysicsSettings struct {
	Gravity          float64 `json:"gravity"`
	TerminalVelocity float64 `json:"terminalVelocity"`
}

type MovementConfig struct {
	Acceleration    float64 `json:"acceleration"`    // ramp step per tick
	MaxAcceleration float64 `json:"maxAcceleration"` // ramp cap
	MaxSpeed        float64 `json:"maxSpeed"`
}

type FallConfig struct {
	Multiplier      float64 `json:"multiplier"`      // fall acceleration ramp step per tick
	MaxAcceleration float64 `json:"maxAcceleration"` // fall acceleration cap
}

type JumpConfig struct {
	Velocity float64 `json:"velocity"` // negative is up
}

// MeterConfig configures the alive meter and the wind-up charge
type MeterConfig struct {
	Max          float64 `json:"max"`
	Charge       float64 `json:"charge"`
	Drain        float64 `json:"drain"` // per tick
	Initial      float64 `json:"initial"`
	WindupTime   float64 `json:"windupTime"` // seconds
	Iframes      float64 `json:"iframes"`    // seconds
	HazardDamage float64 `json:"hazardDamage"`
}

type CollisionConfig struct {
	Hitbox Rect `json:"hitbox"`
}

type FeedbackConfig struct {
	WindDownInterval float64       `json:"windDownInterval"` // seconds
	WindDownVolume   float64       `json:"windDownVolume"`
	WindupVolume     float64       `json:"windupVolume"`
	StepInterval     float64       `json:"stepInterval"` // seconds
	Dust             ParticleBurst `json:"dust"`
	Trail            ParticleBurst `json:"trail"`
}

// ParticleBurst describes one particle emission request
type ParticleBurst struct {
	Count  int     `json:"count"`
	Spread float64 `json:"spread"`
}

// Default returns the built-in tuning
func Default() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 360,
			Scale:        2,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:          10,
			TerminalVelocity: 10,
		},
		Movement: MovementConfig{
			Acceleration:    0.1,
			MaxAcceleration: 1,
			MaxSpeed:        6,
		},
		Fall: FallConfig{
			Multiplier:      0.5,
			MaxAcceleration: 0.3,
		},
		Jump: JumpConfig{
			Velocity: -35,
		},
		Meter: MeterConfig{
			Max:          1000,
			Charge:       200,
			Drain:        1,
			Initial:      0,
			WindupTime:   1,
			Iframes:      2,
			HazardDamage: 100,
		},
		Collision: CollisionConfig{
			Hitbox: Rect{OffsetX: 0, OffsetY: 0, Width: 32, Height: 48},
		},
		Feedback: FeedbackConfig{
			WindDownInterval: 0.2,
			WindDownVolume:   0.25,
			WindupVolume:     0.5,
			StepInterval:     0.25,
			Dust:             ParticleBurst{Count: 15, Spread: 10},
			Trail:            ParticleBurst{Count: 3, Spread: 2},
		},
	}
}

// Normalize clamps values a hand-edited file could push out of range.
// Caps and ranges are forced non-negative, the meter's initial value is
// clamped into [0, Max], and zero intervals fall back to the defaults.
func (c *PhysicsConfig) Normalize() {
	def := Default()

	c.Movement.Acceleration = nonNegative(c.Movement.Acceleration)
	c.Movement.MaxAcceleration = nonNegative(c.Movement.MaxAcceleration)
	c.Movement.MaxSpeed = nonNegative(c.Movement.MaxSpeed)
	c.Fall.Multiplier = nonNegative(c.Fall.Multiplier)
	c.Fall.MaxAcceleration = nonNegative(c.Fall.MaxAcceleration)
	c.Physics.TerminalVelocity = nonNegative(c.Physics.TerminalVelocity)

	c.Meter.Max = nonNegative(c.Meter.Max)
	c.Meter.Charge = nonNegative(c.Meter.Charge)
	c.Meter.Drain = nonNegative(c.Meter.Drain)
	c.Meter.Initial = clamp(c.Meter.Initial, 0, c.Meter.Max)
	c.Meter.Iframes = nonNegative(c.Meter.Iframes)
	c.Meter.HazardDamage = nonNegative(c.Meter.HazardDamage)
	if c.Meter.WindupTime <= 0 {
		c.Meter.WindupTime = def.Meter.WindupTime
	}

	if c.Feedback.WindDownInterval <= 0 {
		c.Feedback.WindDownInterval = def.Feedback.WindDownInterval
	}
	if c.Feedback.StepInterval <= 0 {
		c.Feedback.StepInterval = def.Feedback.StepInterval
	}
	c.Feedback.WindDownVolume = clamp(c.Feedback.WindDownVolume, 0, 1)
	c.Feedback.WindupVolume = clamp(c.Feedback.WindupVolume, 0, 1)

	if c.Collision.Hitbox.Width <= 0 || c.Collision.Hitbox.Height <= 0 {
		c.Collision.Hitbox = def.Collision.Hitbox
	}
	if c.Display.Framerate <= 0 {
		c.Display.Framerate = def.Display.Framerate
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
