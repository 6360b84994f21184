// Package components holds the pure data components of the confetti
// renderer. Components carry no methods; systems own all behavior.
package components

// PositionComponent is an entity's position in screen pixels.
type PositionComponent struct {
	X float64
	Y float64
}
