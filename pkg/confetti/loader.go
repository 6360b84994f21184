package confetti

import (
	"log"
	"sync"
)

// FetchFunc builds the renderer capability, typically by resolving an
// effect pack (local cache, embedded fallback, or remote download) and
// constructing a renderer from it. It runs on a loader goroutine and
// may block.
type FetchFunc func() (Renderer, error)

// Loader resolves the renderer capability on demand.
//
// A host with the capability already available installs it with
// SetRenderer and EnsureRenderer completes synchronously. Otherwise the
// loader runs its fetch function once, no matter how many callers ask
// concurrently: an explicit loading flag plus a pending-callback list
// guarantees at most one fetch in flight, and every caller's callback
// fires when it completes.
//
// A loader built with a nil fetch function represents a host with no
// display context: EnsureRenderer logs a warning and never invokes the
// callback. Callers receive no other signal; the animation simply does
// not play.
type Loader struct {
	mu       sync.Mutex
	renderer Renderer
	loading  bool
	pending  []func(Renderer)
	fetch    FetchFunc
}

// NewLoader creates a loader that resolves the renderer via fetch.
// A nil fetch marks the host as headless: the renderer can still be
// installed with SetRenderer, but nothing will be fetched.
func NewLoader(fetch FetchFunc) *Loader {
	return &Loader{fetch: fetch}
}

// SetRenderer installs an already-available renderer capability.
// Pending callbacks from an in-flight fetch are not affected; they fire
// when the fetch completes.
func (l *Loader) SetRenderer(r Renderer) {
	l.mu.Lock()
	l.renderer = r
	l.mu.Unlock()
}

// Renderer returns the currently installed renderer, or nil if none has
// been installed or fetched yet.
func (l *Loader) Renderer() Renderer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.renderer
}

// EnsureRenderer invokes ready exactly once with a usable renderer.
//
// If the renderer is already installed, ready is invoked synchronously
// before EnsureRenderer returns. If a fetch is needed, ready fires on
// the loader goroutine once the fetch completes. On failure (headless
// host or fetch error) a warning is logged and ready is never invoked.
func (l *Loader) EnsureRenderer(ready func(Renderer)) {
	l.mu.Lock()

	if l.renderer != nil {
		r := l.renderer
		l.mu.Unlock()
		ready(r)
		return
	}

	if l.fetch == nil {
		l.mu.Unlock()
		log.Printf("[Loader] Warning: no display context, confetti disabled")
		return
	}

	l.pending = append(l.pending, ready)
	if l.loading {
		// A fetch is already in flight; this caller rides along.
		l.mu.Unlock()
		return
	}
	l.loading = true
	l.mu.Unlock()

	go l.runFetch()
}

// runFetch performs the single in-flight fetch and delivers the result
// to every pending callback.
func (l *Loader) runFetch() {
	r, err := l.fetch()

	l.mu.Lock()
	l.loading = false
	if err != nil {
		// Failed loads drop their callbacks; a later EnsureRenderer
		// call starts a fresh fetch.
		l.pending = nil
		l.mu.Unlock()
		log.Printf("[Loader] Warning: failed to load renderer: %v", err)
		return
	}
	l.renderer = r
	callbacks := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, cb := range callbacks {
		cb(r)
	}
}
