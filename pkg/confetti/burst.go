// Package confetti implements the celebration animation controller.
//
// A celebration is a timed session: every tick the controller asks the
// renderer for two symmetric confetti bursts, one from each side of the
// viewport, with a particle budget that decays linearly to zero over the
// session. The renderer capability is resolved on demand by a Loader; if
// it cannot be resolved the celebration silently does not play; no
// failure reaches the host beyond a log line.
package confetti

// Origin is a normalized viewport position. X and Y are expressed as a
// fraction of the viewport size, so 0.5/0.5 is the center. Values
// slightly outside [0, 1] are legal; bursts launched just off-screen
// rain particles into view.
type Origin struct {
	X float64
	Y float64
}

// Burst describes one invocation of the renderer: a single confetti
// burst with a particle budget, launch parameters, and an origin.
type Burst struct {
	// ParticleCount is the particle budget for this burst. It is kept
	// fractional because the session decay produces non-integral
	// budgets; the renderer rounds as it sees fit.
	ParticleCount float64

	// StartVelocity is the initial launch speed in pixels per renderer
	// frame; renderers convert using their own frame rate.
	StartVelocity float64

	// Spread is the launch arc in degrees. 360 launches in all directions.
	Spread float64

	// Ticks is how many renderer frames each particle lives.
	Ticks int

	// ZIndex is the render layer. Higher layers draw on top.
	ZIndex int

	// Origin is where the burst launches from.
	Origin Origin
}

// DefaultBurst returns the shared burst defaults: a full-circle burst
// from the viewport center.
func DefaultBurst() Burst {
	return Burst{
		StartVelocity: 30,
		Spread:        360,
		Ticks:         60,
		ZIndex:        0,
		Origin:        Origin{X: 0.5, Y: 0.5},
	}
}
