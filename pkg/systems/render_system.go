package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/ecs"
)

// RenderSystem draws confetti particles as rotated, tinted rectangles.
// All pieces share a single white pixel image; size, rotation, color
// and opacity come from the particle component.
type RenderSystem struct {
	EntityManager *ecs.EntityManager

	pixel *ebiten.Image
}

// NewRenderSystem creates a render system for em. Requires a running
// ebiten game loop (image allocation needs the graphics context).
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &RenderSystem{
		EntityManager: em,
		pixel:         pixel,
	}
}

// Draw renders every live particle to screen, back to front by z-index.
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	em := rs.EntityManager

	type drawable struct {
		particle *components.ParticleComponent
		pos      *components.PositionComponent
	}

	var items []drawable
	for _, id := range ecs.EntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		particle, ok := ecs.Component[*components.ParticleComponent](em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.Component[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		items = append(items, drawable{particle, pos})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].particle.ZIndex < items[j].particle.ZIndex
	})

	for _, item := range items {
		rs.drawParticle(screen, item.particle, item.pos)
	}
}

func (rs *RenderSystem) drawParticle(screen *ebiten.Image, p *components.ParticleComponent, pos *components.PositionComponent) {
	w := p.Width * p.Scale
	h := p.Height * p.Scale
	if w <= 0 || h <= 0 || p.Alpha <= 0 {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(w, h)
	opts.GeoM.Translate(-w/2, -h/2)
	opts.GeoM.Rotate(p.Rotation * math.Pi / 180)
	opts.GeoM.Translate(pos.X, pos.Y)
	opts.ColorScale.Scale(float32(p.Red), float32(p.Green), float32(p.Blue), float32(p.Alpha))
	screen.DrawImage(rs.pixel, opts)
}
