package confetti

import (
	"sync"
	"time"

	"github.com/decker502/confetti/internal/effect"
)

// Session timing defaults. A celebration runs for 15 seconds, firing a
// pair of bursts every 250ms with a particle budget that decays
// linearly from 50 to zero.
const (
	DefaultDuration     = 15 * time.Second
	DefaultTickInterval = 250 * time.Millisecond
	DefaultMaxParticles = 50.0
)

// Horizontal origin bands. The left burst launches from [0.1, 0.3] of
// the viewport width, the right burst from [0.7, 0.9]. Both sample
// origin.y uniformly in [-0.2, 0.8) so some bursts start just above the
// viewport and rain down into it.
const (
	leftBandMin  = 0.1
	leftBandMax  = 0.3
	rightBandMin = 0.7
	rightBandMax = 0.9
	originYShift = -0.2
)

// SessionConfig holds the timing and budget parameters of one
// celebration session. The zero value is not usable; start from
// DefaultSessionConfig.
type SessionConfig struct {
	Duration     time.Duration // Total session length
	TickInterval time.Duration // Spacing between burst pairs
	MaxParticles float64       // Budget of the first tick; decays linearly to zero
	Defaults     Burst         // Template for every emitted burst
}

// DefaultSessionConfig returns the standard celebration parameters.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Duration:     DefaultDuration,
		TickInterval: DefaultTickInterval,
		MaxParticles: DefaultMaxParticles,
		Defaults:     DefaultBurst(),
	}
}

// Session is one timed run of the celebration animation, from start to
// natural or forced termination. Sessions are single-use: once finished
// or stopped they hold no state and cannot be restarted.
type Session struct {
	cfg      SessionConfig
	renderer Renderer
	endTime  time.Time

	// now is the clock used by the tick loop. Tests substitute a fake.
	now func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// newSession creates an idle session; the tick loop starts only once a
// renderer is delivered.
func newSession(cfg SessionConfig) *Session {
	return &Session{
		cfg:  cfg,
		now:  time.Now,
		done: make(chan struct{}),
	}
}

// StartSession begins a celebration using the given loader and
// configuration, and returns a handle that can stop it early.
//
// The session scheduler starts as soon as the loader delivers a
// renderer. If it never does (headless host, failed fetch) the session
// never ticks and the returned handle's Stop is a safe no-op. Per the
// degrade-silently contract, the caller is not told.
func StartSession(loader *Loader, cfg SessionConfig) *Session {
	s := newSession(cfg)
	loader.EnsureRenderer(func(r Renderer) {
		s.renderer = r
		go s.run()
	})
	return s
}

// Stop terminates the session early. Stopping a session that has
// already finished, or one that never started, has no effect.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// Done returns a channel closed when the session has been stopped.
// A session that ends naturally also closes it.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// run drives the tick loop until the session duration elapses or Stop
// is called. Tick spacing is best-effort: the ticker fires in strict
// order but scheduling jitter may stretch individual intervals.
func (s *Session) run() {
	s.endTime = s.now().Add(s.cfg.Duration)

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if !s.tick(s.now()) {
				s.Stop()
				return
			}
		}
	}
}

// tick emits one burst pair for the given instant. It reports whether
// the session should keep ticking: once the remaining time reaches
// zero, no burst is emitted and the loop ends.
func (s *Session) tick(now time.Time) bool {
	remaining := s.endTime.Sub(now)
	if remaining <= 0 {
		return false
	}

	// Linear decay from the full budget down to zero.
	budget := s.cfg.MaxParticles * (remaining.Seconds() / s.cfg.Duration.Seconds())

	left := s.cfg.Defaults
	left.ParticleCount = budget
	left.Origin = Origin{
		X: effect.RandomInRange(leftBandMin, leftBandMax),
		Y: effect.RandomInRange(0, 1) + originYShift,
	}

	right := s.cfg.Defaults
	right.ParticleCount = budget
	right.Origin = Origin{
		X: effect.RandomInRange(rightBandMin, rightBandMax),
		Y: effect.RandomInRange(0, 1) + originYShift,
	}

	s.renderer.Fire(left)
	s.renderer.Fire(right)
	return true
}

// Process-wide surface. Start fires a celebration with the default
// configuration through the package loader; Stop cancels the most
// recently started one. The handle is last-writer-wins: starting a new
// session does not stop a prior one, it only takes over the Stop slot.
var (
	pkgMu      sync.Mutex
	pkgLoader  = NewLoader(nil)
	pkgSession *Session
)

// SetLoader installs the loader used by the package-level Start. Hosts
// call this once at startup with a loader wired to their display
// context; without it Start degrades to a logged no-op.
func SetLoader(l *Loader) {
	pkgMu.Lock()
	pkgLoader = l
	pkgMu.Unlock()
}

// Install registers an already-available renderer capability with the
// package loader.
func Install(r Renderer) {
	pkgMu.Lock()
	pkgLoader.SetRenderer(r)
	pkgMu.Unlock()
}

// Start fires a celebration with the default configuration. The new
// session becomes the target of the package-level Stop.
func Start() {
	pkgMu.Lock()
	loader := pkgLoader
	pkgMu.Unlock()

	s := StartSession(loader, DefaultSessionConfig())

	pkgMu.Lock()
	pkgSession = s
	pkgMu.Unlock()
}

// Stop cancels the most recently started session. Calling it with no
// session active, or after the session has already ended, is a no-op.
func Stop() {
	pkgMu.Lock()
	s := pkgSession
	pkgMu.Unlock()

	if s != nil {
		s.Stop()
	}
}
