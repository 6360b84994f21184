package confetti

// Renderer is the external particle-burst drawing capability the
// controller depends on but does not implement. The toolkit ships an
// ebiten-backed implementation in pkg/systems; hosts may install their
// own.
//
// Fire must not block: the session scheduler calls it from its tick
// loop and expects it to queue work for the renderer's own frame loop.
type Renderer interface {
	Fire(Burst)
}

// FireFunc adapts a plain function to the Renderer interface.
type FireFunc func(Burst)

// Fire calls f(b).
func (f FireFunc) Fire(b Burst) {
	f(b)
}
