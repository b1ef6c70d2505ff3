package collision

import (
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/windup/internal/domain/entity"
)

// Body is something that can be tested against the world and told about
// the obstacles it overlaps.
type Body interface {
	Hitbox() entity.Rect
	OnCollision(obstacle *entity.Obstacle)
}

// World indexes stage obstacles in a chipmunk space for overlap queries.
// The space is used as a broad phase only: it never steps.
type World struct {
	space  *cp.Space
	shapes map[entity.EntityID]*cp.Shape
}

// NewWorld creates a world holding every obstacle of stage
func NewWorld(stage *entity.Stage) *World {
	w := &World{
		space:  cp.NewSpace(),
		shapes: make(map[entity.EntityID]*cp.Shape),
	}
	if stage != nil {
		for _, o := range stage.Obstacles {
			w.Add(o)
		}
	}
	return w
}

// Add indexes an obstacle. Re-adding an ID replaces the previous shape.
func (w *World) Add(o *entity.Obstacle) {
	if o == nil || o.Box.W <= 0 || o.Box.H <= 0 {
		return
	}
	w.Remove(o.ID)

	shape := cp.NewBox2(w.space.StaticBody, toBB(o.Box), 0)
	shape.UserData = o
	w.space.AddShape(shape)
	w.shapes[o.ID] = shape
}

// Remove drops an obstacle from the index
func (w *World) Remove(id entity.EntityID) {
	shape, ok := w.shapes[id]
	if !ok {
		return
	}
	w.space.RemoveShape(shape)
	delete(w.shapes, id)
}

// Len returns the number of indexed obstacles
func (w *World) Len() int {
	return len(w.shapes)
}

// Query returns the obstacles whose box overlaps box with positive area,
// ordered by ID.
func (w *World) Query(box entity.Rect) []*entity.Obstacle {
	var out []*entity.Obstacle
	w.space.BBQuery(toBB(box), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, data interface{}) {
		o, ok := shape.UserData.(*entity.Obstacle)
		if !ok || !box.Intersects(o.Box) {
			return
		}
		out = append(out, o)
	}, nil)

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Collide reports each overlapping obstacle to body and returns how many
// were reported. The hitbox is re-read before every report because an
// earlier contact may already have moved the body clear.
func (w *World) Collide(body Body) int {
	count := 0
	for _, o := range w.Query(body.Hitbox()) {
		if !body.Hitbox().Intersects(o.Box) {
			continue
		}
		body.OnCollision(o)
		count++
	}
	return count
}

func toBB(r entity.Rect) cp.BB {
	return cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
}
