package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player    PlayerConfig               `json:"player"`
	Obstacles map[string]ObstacleStyle   `json:"obstacles"`
	Sounds    map[string]SoundClipConfig `json:"sounds"`
}

type PlayerConfig struct {
	ID     string       `json:"id"`
	Sprite SpriteConfig `json:"sprite"`
}

type SpriteConfig struct {
	FrameWidth  int                        `json:"frameWidth"`
	FrameHeight int                        `json:"frameHeight"`
	Color       string                     `json:"color"`
	Animations  map[string]AnimationConfig `json:"animations"`
}

// AnimationConfig describes a named clip: frame count and seconds per frame
type AnimationConfig struct {
	Frames     int     `json:"frames"`
	FrameSpeed float64 `json:"frameSpeed"`
	Loop       bool    `json:"loop"`
}

// Rect is a hitbox relative to the owner's top-left corner
type Rect struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// ObstacleStyle is how an obstacle kind is drawn
type ObstacleStyle struct {
	Color string `json:"color"`
}

// SoundClipConfig describes a synthesized sound clip
type SoundClipConfig struct {
	Wave     string  `json:"wave"` // sine, square, saw, noise
	Freq     float64 `json:"freq"`
	EndFreq  float64 `json:"endFreq"`
	Duration float64 `json:"duration"` // seconds
	Attack   float64 `json:"attack"`   // seconds
	Release  float64 `json:"release"`  // seconds
	Volume   float64 `json:"volume"`
}
