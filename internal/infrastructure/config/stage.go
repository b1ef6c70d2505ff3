package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	Size        StageSizeConfig              `yaml:"size"`
	Background  string                       `yaml:"background"`
	PlayerSpawn PositionConfig               `yaml:"player_spawn"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tile_mapping"`
	Obstacles   []ObstacleConfig             `yaml:"obstacles"`
}

type StageSizeConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LayersConfig holds the char-grid collision layer, one string per tile row
type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

type TileMappingConfig struct {
	Type  string  `yaml:"type"`
	Speed float64 `yaml:"speed,omitempty"`
}

// ObstacleConfig places a free-standing obstacle in pixel coordinates
type ObstacleConfig struct {
	Kind  string  `yaml:"kind"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Speed float64 `yaml:"speed,omitempty"`
}
