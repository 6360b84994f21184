// Package effect provides data structures and parsing functionality for
// confetti effect pack definitions.
//
// An effect pack is an XML document describing one or more emitters. Each
// emitter defines how a single burst population looks and behaves: paper
// rectangles, streamers, glitter, and so on. Several value fields use a
// compact string grammar instead of plain numbers so that a single
// definition can describe randomized and animated properties:
//
//   - Fixed value: "1500"
//   - Range: "[0.7 0.9]" (uniform random between min and max)
//   - Keyframes: "0,1 0.7,1 1,0" (time,value pairs over normalized life)
//   - Interpolation keywords: "Linear", "EaseIn", "EaseOut", "FastInOutWeak"
//
// These strings are parsed once per spawn by ParseValue.
package effect

// Pack represents the root structure of an effect pack document.
// A pack may contain multiple emitters contributing to one visual effect.
type Pack struct {
	Emitters []EmitterConfig `xml:"Emitter"`
}

// EmitterConfig describes a single confetti emitter.
//
// All numeric fields are kept as strings to preserve the value grammar
// described in the package comment; they are evaluated at spawn time.
type EmitterConfig struct {
	// Name is the unique identifier for this emitter
	Name string `xml:"Name"`

	// Weight is the share of a burst's particle budget this emitter
	// receives relative to its siblings (default 1)
	Weight string `xml:"Weight,omitempty"`

	// Particle properties
	ParticleDuration  string `xml:"ParticleDuration,omitempty"`  // Lifetime in milliseconds
	ParticleAlpha     string `xml:"ParticleAlpha,omitempty"`     // Transparency (0-1), may be keyframed
	ParticleScale     string `xml:"ParticleScale,omitempty"`     // Size multiplier
	ParticleSpinAngle string `xml:"ParticleSpinAngle,omitempty"` // Initial rotation angle (degrees)
	ParticleSpinSpeed string `xml:"ParticleSpinSpeed,omitempty"` // Rotation speed (degrees/sec)
	ParticleRed       string `xml:"ParticleRed,omitempty"`       // Red channel (0-1)
	ParticleGreen     string `xml:"ParticleGreen,omitempty"`     // Green channel (0-1)
	ParticleBlue      string `xml:"ParticleBlue,omitempty"`      // Blue channel (0-1)

	// Launch properties
	LaunchSpeed string `xml:"LaunchSpeed,omitempty"` // Multiplier on the burst's start velocity
	LaunchAngle string `xml:"LaunchAngle,omitempty"` // Base launch direction offset (degrees)

	// Shape properties
	ShapeWidth  string `xml:"ShapeWidth,omitempty"`  // Confetti piece width in pixels
	ShapeHeight string `xml:"ShapeHeight,omitempty"` // Confetti piece height in pixels

	// Fields (force fields: gravity, drag)
	Fields []Field `xml:"Field"`
}

// Field represents a force that affects particle motion after launch.
type Field struct {
	FieldType string `xml:"FieldType"`   // "Acceleration" or "Friction"
	X         string `xml:"X,omitempty"` // Horizontal component (value grammar)
	Y         string `xml:"Y,omitempty"` // Vertical component (value grammar)
}
