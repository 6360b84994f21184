// Package systems holds the behavior half of the confetti renderer:
// the particle system spawns and integrates confetti pieces, the render
// system draws them.
package systems

import (
	"math"
	"sync"

	"github.com/decker502/confetti/internal/effect"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/confetti"
	"github.com/decker502/confetti/pkg/ecs"
)

// Launch speeds in a Burst are expressed in pixels per renderer frame;
// integration runs in seconds at the nominal frame rate.
const framesPerSecond = 60.0

// ParticleSystem spawns confetti particles from bursts and advances
// them each frame. It implements confetti.Renderer: Fire queues a
// burst, and the next Update drains the queue into live particles.
//
// The queue is the only concurrency boundary: the session scheduler
// fires from its own goroutine while Update runs on the frame loop.
// Everything else is single-threaded frame-loop state.
type ParticleSystem struct {
	EntityManager *ecs.EntityManager
	Pack          *effect.Pack

	// Viewport size in pixels, for resolving normalized burst origins.
	Width  float64
	Height float64

	mu     sync.Mutex
	queued []confetti.Burst
}

// NewParticleSystem creates a particle system rendering into a viewport
// of the given pixel size, using pack to shape the spawned confetti.
func NewParticleSystem(em *ecs.EntityManager, pack *effect.Pack, width, height float64) *ParticleSystem {
	return &ParticleSystem{
		EntityManager: em,
		Pack:          pack,
		Width:         width,
		Height:        height,
	}
}

// Fire queues a burst for the next frame. Never blocks; safe to call
// from any goroutine.
func (ps *ParticleSystem) Fire(b confetti.Burst) {
	ps.mu.Lock()
	ps.queued = append(ps.queued, b)
	ps.mu.Unlock()
}

// Update drains queued bursts into particles and advances every live
// particle by dt seconds. Expired particles are marked for removal;
// the frame loop sweeps them afterwards.
func (ps *ParticleSystem) Update(dt float64) {
	ps.mu.Lock()
	bursts := ps.queued
	ps.queued = nil
	ps.mu.Unlock()

	for _, b := range bursts {
		ps.spawnBurst(b)
	}

	ps.updateParticles(dt)
}

// ActiveParticles returns the number of live confetti particles.
func (ps *ParticleSystem) ActiveParticles() int {
	return len(ecs.EntitiesWith1[*components.ParticleComponent](ps.EntityManager))
}

// spawnBurst distributes a burst's particle budget across the pack's
// emitters by weight and spawns the particles at the burst origin.
func (ps *ParticleSystem) spawnBurst(b confetti.Burst) {
	total := int(math.Round(b.ParticleCount))
	if total <= 0 {
		return
	}

	x := b.Origin.X * ps.Width
	y := b.Origin.Y * ps.Height

	totalWeight := 0.0
	for i := range ps.Pack.Emitters {
		totalWeight += emitterWeight(&ps.Pack.Emitters[i])
	}
	if totalWeight <= 0 {
		return
	}

	spawned := 0
	for i := range ps.Pack.Emitters {
		emitter := &ps.Pack.Emitters[i]

		count := int(math.Round(float64(total) * emitterWeight(emitter) / totalWeight))
		if i == len(ps.Pack.Emitters)-1 {
			// Last emitter absorbs the rounding remainder.
			count = total - spawned
		}
		for j := 0; j < count; j++ {
			ps.spawnParticle(emitter, b, x, y)
		}
		spawned += count
	}
}

func emitterWeight(e *effect.EmitterConfig) float64 {
	w := effect.SampleValue(e.Weight, 1)
	if w < 0 {
		return 0
	}
	return w
}

// spawnParticle creates one confetti piece from an emitter definition.
// Ranged emitter values are sampled here, once per particle.
func (ps *ParticleSystem) spawnParticle(e *effect.EmitterConfig, b confetti.Burst, x, y float64) {
	em := ps.EntityManager

	// Launch direction: the emitter's base angle offset plus a uniform
	// sample across the burst's spread arc, measured from straight up.
	baseAngle := effect.SampleValue(e.LaunchAngle, 0)
	angle := baseAngle + effect.RandomInRange(-b.Spread/2, b.Spread/2)
	rad := (angle - 90) * math.Pi / 180

	speed := b.StartVelocity * effect.SampleValue(e.LaunchSpeed, 1) * framesPerSecond

	_, _, alphaKeyframes, alphaInterp := effect.ParseValue(e.ParticleAlpha)
	alpha := 1.0
	if alphaKeyframes == nil {
		alpha = effect.SampleValue(e.ParticleAlpha, 1)
	}

	particle := &components.ParticleComponent{
		VelocityX:      math.Cos(rad) * speed,
		VelocityY:      math.Sin(rad) * speed,
		Rotation:       effect.SampleValue(e.ParticleSpinAngle, 0),
		RotationSpeed:  effect.SampleValue(e.ParticleSpinSpeed, 0),
		Scale:          effect.SampleValue(e.ParticleScale, 1),
		Alpha:          alpha,
		AlphaKeyframes: alphaKeyframes,
		AlphaInterp:    alphaInterp,
		Red:            effect.SampleValue(e.ParticleRed, 1),
		Green:          effect.SampleValue(e.ParticleGreen, 1),
		Blue:           effect.SampleValue(e.ParticleBlue, 1),
		Width:          effect.SampleValue(e.ShapeWidth, 8),
		Height:         effect.SampleValue(e.ShapeHeight, 8),
		Lifetime:       effect.SampleValue(e.ParticleDuration, 1000) / 1000.0,
		TicksLeft:      b.Ticks,
		ZIndex:         b.ZIndex,
	}

	for _, field := range e.Fields {
		switch field.FieldType {
		case "Acceleration":
			particle.AccelX += effect.SampleValue(field.X, 0)
			particle.AccelY += effect.SampleValue(field.Y, 0)
		case "Friction":
			particle.FrictionX += effect.SampleValue(field.X, 0)
			particle.FrictionY += effect.SampleValue(field.Y, 0)
		}
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, particle)
}

// updateParticles integrates motion and lifecycle for all particles.
func (ps *ParticleSystem) updateParticles(dt float64) {
	em := ps.EntityManager

	for _, id := range ecs.EntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		particle, ok := ecs.Component[*components.ParticleComponent](em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.Component[*components.PositionComponent](em, id)
		if !ok {
			continue
		}

		particle.Age += dt
		particle.TicksLeft--
		if particle.Age >= particle.Lifetime || particle.TicksLeft <= 0 {
			em.DestroyEntity(id)
			continue
		}

		// Forces, then drag, then integration.
		particle.VelocityX += particle.AccelX * dt
		particle.VelocityY += particle.AccelY * dt
		particle.VelocityX *= clampFactor(1 - particle.FrictionX*dt)
		particle.VelocityY *= clampFactor(1 - particle.FrictionY*dt)

		pos.X += particle.VelocityX * dt
		pos.Y += particle.VelocityY * dt
		particle.Rotation += particle.RotationSpeed * dt

		if particle.AlphaKeyframes != nil && particle.Lifetime > 0 {
			t := particle.Age / particle.Lifetime
			particle.Alpha = effect.EvaluateKeyframes(particle.AlphaKeyframes, t, particle.AlphaInterp)
		}
	}
}

// clampFactor keeps a drag multiplier in [0, 1] so large dt spikes
// cannot reverse velocity.
func clampFactor(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
