package entity

// EntityID is a unique identifier for an obstacle
type EntityID uint32

// ObstacleKind tags what an obstacle does on contact
type ObstacleKind int

const (
	KindUnknown  ObstacleKind = iota
	KindSolid                 // ground, walls, platforms
	KindConveyor              // carry marker, no positional resolution
	KindClock                 // timer pickup, pass-through
	KindSpikes                // hazard, respects invulnerability
	KindChopper               // landing on it removes the player
)

// String returns the name used in stage files
func (k ObstacleKind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindConveyor:
		return "conveyor"
	case KindClock:
		return "clock"
	case KindSpikes:
		return "spikes"
	case KindChopper:
		return "chopper"
	default:
		return "unknown"
	}
}

// ParseObstacleKind maps a stage file name to a kind.
// Unrecognized names map to KindUnknown.
func ParseObstacleKind(s string) ObstacleKind {
	switch s {
	case "solid", "wall", "ground":
		return KindSolid
	case "conveyor":
		return KindConveyor
	case "clock":
		return KindClock
	case "spikes", "spike":
		return KindSpikes
	case "chopper":
		return KindChopper
	default:
		return KindUnknown
	}
}

// Obstacle is a piece of stage geometry the player can overlap
type Obstacle struct {
	ID    EntityID
	Kind  ObstacleKind
	Box   Rect
	Speed float64 // conveyor carry speed, pixels per tick (positive carries left)
}

// Stage represents the current stage's geometry
type Stage struct {
	Width     int // pixels
	Height    int // pixels
	TileSize  int
	Obstacles []*Obstacle
	SpawnX    int
	SpawnY    int
}

// ObstaclesOf returns all obstacles of the given kind
func (s *Stage) ObstaclesOf(kind ObstacleKind) []*Obstacle {
	var out []*Obstacle
	for _, o := range s.Obstacles {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// Contains reports whether the pixel point lies inside the stage bounds
func (s *Stage) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(s.Width) && y < float64(s.Height)
}
