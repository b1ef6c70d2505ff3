package entity

// Vec2 is a 2D vector in world units (pixels).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle, X/Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rect
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether r and o share a region of positive area.
// Rects that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Translate returns r moved by d
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// HitboxRect is the collision box relative to the body's top-left position
type HitboxRect struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Body represents the physical body of an entity.
// Velocity is in world units per tick: the controller integrates it once per frame.
type Body struct {
	Position Vec2
	Velocity Vec2
	Hitbox   HitboxRect

	FacingRight bool
}

// WorldHitbox returns the hitbox in world coordinates
func (b *Body) WorldHitbox() Rect {
	return Rect{
		X: b.Position.X + b.Hitbox.OffsetX,
		Y: b.Position.Y + b.Hitbox.OffsetY,
		W: b.Hitbox.Width,
		H: b.Hitbox.Height,
	}
}

// IsAirborne is true while the body has any vertical speed
func (b *Body) IsAirborne() bool {
	return b.Velocity.Y != 0
}

// IsIdleHorizontal is true when the body has no horizontal speed
func (b *Body) IsIdleHorizontal() bool {
	return b.Velocity.X == 0
}

func (b *Body) IsMovingLeft() bool  { return b.Velocity.X < 0 }
func (b *Body) IsMovingRight() bool { return b.Velocity.X > 0 }

// Player is the single controllable entity: body plus meter and motion state.
type Player struct {
	Body

	// Ramped accelerations
	CurrentAcceleration float64
	FallAcceleration    float64

	// Alive meter
	Alive float64

	// Timers (seconds)
	WindupTimer          float64
	InvulnerabilityTimer float64
	WindDownSoundTimer   float64
	StepSoundTimer       float64

	// State
	Jumping   bool
	OnSupport bool
	WindingUp bool
	Removed   bool

	// Conveyor carry, set by conveyor contact and cleared when airborne
	OnConveyor    bool
	ConveyorSpeed float64
}

// NewPlayer creates a player at the given pixel position.
// The invulnerability timer starts at iframes: the player becomes damageable
// on the first tick after spawn.
func NewPlayer(x, y float64, hitbox HitboxRect, alive, iframes float64) *Player {
	return &Player{
		Body: Body{
			Position:    Vec2{X: x, Y: y},
			Hitbox:      hitbox,
			FacingRight: true,
		},
		Alive:                alive,
		InvulnerabilityTimer: iframes,
	}
}
