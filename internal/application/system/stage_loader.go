package system

import (
	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// conveyorMarkerHeight is how far a conveyor's carry marker reaches above
// the belt, so a body resting on the belt still overlaps it.
const conveyorMarkerHeight = 2

type tileCell struct {
	kind  entity.ObstacleKind
	speed float64
}

// LoadStage converts a StageConfig into a Stage entity. Runs of equal
// tiles are merged into the fewest rectangles; every conveyor rectangle
// also gets a carry marker on top.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileSize := cfg.Size.TileSize
	width := cfg.Size.Width / tileSize
	height := len(cfg.Layers.Collision)

	grid := make([][]tileCell, height)
	for y, row := range cfg.Layers.Collision {
		grid[y] = make([]tileCell, width)
		for x, char := range []rune(row) {
			if x >= width {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}
			grid[y][x] = tileCell{
				kind:  entity.ParseObstacleKind(mapping.Type),
				speed: mapping.Speed,
			}
		}
	}

	stage := &entity.Stage{
		Width:    cfg.Size.Width,
		Height:   cfg.Size.Height,
		TileSize: tileSize,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}

	var nextID entity.EntityID
	add := func(kind entity.ObstacleKind, box entity.Rect, speed float64) {
		nextID++
		stage.Obstacles = append(stage.Obstacles, &entity.Obstacle{
			ID:    nextID,
			Kind:  kind,
			Box:   box,
			Speed: speed,
		})
	}

	ts := float64(tileSize)
	for _, run := range mergeTiles(grid, width, height) {
		box := entity.Rect{
			X: float64(run.x) * ts,
			Y: float64(run.y) * ts,
			W: float64(run.w) * ts,
			H: float64(run.h) * ts,
		}
		if run.cell.kind == entity.KindConveyor {
			add(entity.KindSolid, box, 0)
			marker := entity.Rect{X: box.X, Y: box.Y - conveyorMarkerHeight, W: box.W, H: box.H + conveyorMarkerHeight}
			add(entity.KindConveyor, marker, run.cell.speed)
			continue
		}
		add(run.cell.kind, box, 0)
	}

	for _, o := range cfg.Obstacles {
		kind := entity.ParseObstacleKind(o.Kind)
		if kind == entity.KindUnknown {
			continue
		}
		add(kind, entity.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}, o.Speed)
	}

	return stage
}

type tileRun struct {
	x, y, w, h int
	cell       tileCell
}

// mergeTiles greedily covers equal non-empty cells with rectangles,
// widest first along each row, then extended downward.
func mergeTiles(grid [][]tileCell, width, height int) []tileRun {
	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	same := func(x, y int, cell tileCell) bool {
		return !visited[y][x] && grid[y][x] == cell
	}

	var runs []tileRun
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := grid[y][x]
			if visited[y][x] || cell.kind == entity.KindUnknown {
				continue
			}

			w := 0
			for x2 := x; x2 < width && same(x2, y, cell); x2++ {
				w++
			}

			h := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+w; x2++ {
					if !same(x2, y2, cell) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					visited[yy][xx] = true
				}
			}
			runs = append(runs, tileRun{x: x, y: y, w: w, h: h, cell: cell})
		}
	}
	return runs
}
