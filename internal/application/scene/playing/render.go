package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/younwookim/windup/internal/application/state"
	"github.com/younwookim/windup/internal/application/system"
	"github.com/younwookim/windup/internal/domain/entity"
	"github.com/younwookim/windup/internal/infrastructure/config"
)

// Fallback colors when a config entry is missing or malformed
var (
	defaultBackground = colorful.Color{R: 0.10, G: 0.10, B: 0.18}
	defaultPlayer     = colorful.Color{R: 0.39, G: 0.78, B: 0.39}
	defaultObstacle   = colorful.Color{R: 0.31, G: 0.31, B: 0.39}
	colorKey          = colorful.Color{R: 0.85, G: 0.72, B: 0.30}
	colorMeterBG      = colorful.Color{R: 0.24, G: 0.24, B: 0.24}
	colorMeterFull    = colorful.Color{R: 0.39, G: 0.78, B: 0.39}
	colorMeterEmpty   = colorful.Color{R: 0.78, G: 0.20, B: 0.20}
)

// palette holds the parsed colors for one stage
type palette struct {
	background colorful.Color
	player     colorful.Color
	obstacles  map[entity.ObstacleKind]colorful.Color
}

func newPalette(entities *config.EntitiesConfig, stageCfg *config.StageConfig) *palette {
	p := &palette{
		background: defaultBackground,
		player:     defaultPlayer,
		obstacles:  make(map[entity.ObstacleKind]colorful.Color),
	}
	if stageCfg != nil {
		p.background = parseColor(stageCfg.Background, defaultBackground)
	}
	if entities != nil {
		p.player = parseColor(entities.Player.Sprite.Color, defaultPlayer)
		for name, style := range entities.Obstacles {
			kind := entity.ParseObstacleKind(name)
			if kind == entity.KindUnknown {
				continue
			}
			p.obstacles[kind] = parseColor(style.Color, defaultObstacle)
		}
	}
	return p
}

func (p *palette) obstacle(kind entity.ObstacleKind) colorful.Color {
	if c, ok := p.obstacles[kind]; ok {
		return c
	}
	return defaultObstacle
}

func parseColor(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

// faded returns c at the given opacity, premultiplied
func faded(c colorful.Color, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	r, g, b := c.RGB255()
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(255 * alpha),
	}
}

// followCamera centers on target and clamps to the stage bounds
func followCamera(target entity.Vec2, screenW, screenH, stageW, stageH int) entity.Vec2 {
	cam := entity.Vec2{
		X: target.X - float64(screenW)/2,
		Y: target.Y - float64(screenH)/2,
	}
	cam.X = math.Max(0, math.Min(cam.X, float64(stageW-screenW)))
	cam.Y = math.Max(0, math.Min(cam.Y, float64(stageH-screenH)))
	return cam
}

// screenFrame draws the controller onto the screen through the camera.
// It implements system.Frame.
type screenFrame struct {
	screen    *ebiten.Image
	cam       entity.Vec2
	pal       *palette
	bodyFrame int
}

func (f *screenFrame) DrawBody(box entity.Rect, clip system.AnimationClip, facingRight bool) {
	c := f.pal.player
	x := box.X - f.cam.X
	y := box.Y - f.cam.Y

	switch clip {
	case system.ClipWindup:
		c = c.BlendLab(colorKey, 0.35).Clamped()
	case system.ClipWalk:
		if f.bodyFrame%2 == 1 {
			y--
		}
	}

	ebitenutil.DrawRect(f.screen, x, y, box.W, box.H, c)

	eyeX := x + box.W - 10
	if !facingRight {
		eyeX = x + 4
	}
	ebitenutil.DrawRect(f.screen, eyeX, y+10, 6, 6, f.pal.background)
}

func (f *screenFrame) DrawKey(box entity.Rect, frame int, facingRight bool) {
	x := box.X - f.cam.X
	y := box.Y - f.cam.Y

	ebitenutil.DrawRect(f.screen, x, y+box.H/2-1, box.W, 2, colorKey)

	// The bow narrows as it turns edge-on
	turn := math.Abs(math.Cos(float64(frame) * math.Pi / 5))
	bw := 2 + 3*turn
	bowX := x
	if !facingRight {
		bowX = x + box.W - bw
	}
	ebitenutil.DrawRect(f.screen, bowX, y, bw, box.H, colorKey)
}

func (p *Playing) drawObstacles(screen *ebiten.Image) {
	view := entity.Rect{X: p.cam.X, Y: p.cam.Y, W: float64(p.screenW), H: float64(p.screenH)}
	for _, o := range p.stage.Obstacles {
		if !o.Box.Intersects(view) {
			continue
		}
		c := p.palette.obstacle(o.Kind)
		x := o.Box.X - p.cam.X
		y := o.Box.Y - p.cam.Y

		switch o.Kind {
		case entity.KindConveyor:
			// Only the strip above the tile is visible; the tile itself is solid
			ebitenutil.DrawRect(screen, x, y, o.Box.W, 4, c)
		case entity.KindClock:
			ebitenutil.DrawRect(screen, x, y, o.Box.W, o.Box.H, c)
			ebitenutil.DrawLine(screen, x+o.Box.W/2, y+o.Box.H/2, x+o.Box.W/2, y+2, p.palette.background)
		default:
			ebitenutil.DrawRect(screen, x, y, o.Box.W, o.Box.H, c)
		}
	}
}

func (p *Playing) drawParticles(screen *ebiten.Image) {
	for _, pt := range p.presenter.particles {
		ebitenutil.DrawRect(screen, pt.pos.X-p.cam.X, pt.pos.Y-p.cam.Y, 2, 2, faded(pt.color, pt.alpha()))
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 120.0
	barH := 8.0

	ratio := p.controller.AliveRatio()
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorMeterBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorMeterEmpty.BlendLab(colorMeterFull, ratio).Clamped())

	status := fmt.Sprintf("Alive %4.0f  %s", p.controller.Alive(), p.motion)
	ebitenutil.DebugPrintAt(screen, status, int(barX), int(barY)-16)

	ebitenutil.DebugPrint(screen, "A/D: Move | W/Space: Jump | S: Wind up | ESC: Pause")
}

func (p *Playing) drawOverlay(screen *ebiten.Image) {
	switch p.state {
	case state.StatePaused:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
	case state.StateGameOver:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{100, 0, 0, 180})
		text := fmt.Sprintf("GAME OVER\n\nTime wound: %.1fs\n\nPress Z to restart", p.elapsed)
		ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
	}
}
