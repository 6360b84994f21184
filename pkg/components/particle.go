package components

import "github.com/decker502/confetti/internal/effect"

// ParticleComponent is the runtime state of a single confetti piece.
// Particles are spawned by the particle system when a burst fires and
// destroyed when their tick budget runs out or their lifetime expires,
// whichever comes first.
type ParticleComponent struct {
	// Velocity in pixels per second
	VelocityX float64
	VelocityY float64

	// Rotation in degrees; confetti pieces tumble as they fall
	Rotation      float64
	RotationSpeed float64

	// Scale multiplier (1.0 = the emitter's base shape size)
	Scale float64

	// Transparency, 0 = invisible, 1 = opaque
	Alpha float64
	// Alpha animation over normalized lifetime
	AlphaKeyframes []effect.Keyframe
	AlphaInterp    string

	// Color channels (0-1), fixed at spawn
	Red   float64
	Green float64
	Blue  float64

	// Shape in pixels before scaling
	Width  float64
	Height float64

	// Lifecycle: a particle dies when Age exceeds Lifetime or when it
	// has been drawn for TicksLeft frames, whichever happens first.
	Age       float64 // Seconds alive
	Lifetime  float64 // Seconds before expiry
	TicksLeft int     // Remaining renderer frames

	// Render layer from the originating burst; higher draws on top
	ZIndex int

	// Forces applied each frame
	AccelX    float64 // Pixels per second squared
	AccelY    float64
	FrictionX float64 // Fraction of velocity shed per second
	FrictionY float64
}
