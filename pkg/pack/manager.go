// Package pack resolves effect pack definitions. A pack is looked up in
// the local gdata cache first, then downloaded from the pinned remote
// URL, and finally falls back to the packs embedded in the binary. Any
// failure along the way degrades to the next source; only running out
// of sources is an error.
package pack

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/confetti/internal/effect"
)

// Remote packs are pinned to an exact version so a CDN-side update can
// never change behavior under a shipped binary.
const (
	PackVersion    = "1.6.0"
	DefaultBaseURL = "https://cdn.jsdelivr.net/npm/confetti-effects@" + PackVersion + "/effects/"
)

const (
	cacheObject    = "packs"
	requestTimeout = 10 * time.Second
)

// Manager loads and caches effect packs.
type Manager struct {
	gdataManager *gdata.Manager // may be nil: cache disabled
	embedded     fs.FS          // may be nil: no built-in fallback
	baseURL      string
	client       *http.Client
}

// NewManager creates a pack manager.
//
// gdataManager may be nil, in which case packs are never cached on
// disk. embedded is the directory holding built-in pack files, used
// when the cache misses and the download fails; it may be nil.
func NewManager(gdataManager *gdata.Manager, embedded fs.FS, baseURL string) *Manager {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Manager{
		gdataManager: gdataManager,
		embedded:     embedded,
		baseURL:      baseURL,
		client:       &http.Client{Timeout: requestTimeout},
	}
}

// Resolve returns the effect pack with the given name, consulting the
// cache, the remote source, and the embedded packs in that order.
func (m *Manager) Resolve(name string) (*effect.Pack, error) {
	if data, ok := m.loadCached(name); ok {
		if p, err := effect.Parse(data); err == nil {
			return p, nil
		}
		// A corrupt cache entry is not fatal, re-fetch below.
		log.Printf("[PackManager] Warning: cached pack %q is corrupt, re-fetching", name)
	}

	if data, err := m.download(name); err == nil {
		p, err := effect.Parse(data)
		if err != nil {
			log.Printf("[PackManager] Warning: downloaded pack %q is invalid: %v", name, err)
		} else {
			m.storeCached(name, data)
			return p, nil
		}
	} else {
		log.Printf("[PackManager] Warning: failed to download pack %q: %v", name, err)
	}

	return m.loadEmbedded(name)
}

// loadCached reads a pack from the gdata cache. The cache key includes
// the pinned version so an upgraded binary never reads stale packs.
func (m *Manager) loadCached(name string) ([]byte, bool) {
	if m.gdataManager == nil {
		return nil, false
	}
	prop := cacheProp(name)
	if !m.gdataManager.ObjectPropExists(cacheObject, prop) {
		return nil, false
	}
	data, err := m.gdataManager.LoadObjectProp(cacheObject, prop)
	if err != nil {
		log.Printf("[PackManager] Warning: failed to read cached pack %q: %v", name, err)
		return nil, false
	}
	return data, true
}

func (m *Manager) storeCached(name string, data []byte) {
	if m.gdataManager == nil {
		return
	}
	if err := m.gdataManager.SaveObjectProp(cacheObject, cacheProp(name), data); err != nil {
		log.Printf("[PackManager] Warning: failed to cache pack %q: %v", name, err)
	}
}

func (m *Manager) download(name string) ([]byte, error) {
	url := m.baseURL + name + ".xml"
	resp, err := m.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pack body: %w", err)
	}
	return data, nil
}

func (m *Manager) loadEmbedded(name string) (*effect.Pack, error) {
	if m.embedded == nil {
		return nil, fmt.Errorf("pack %q unavailable: no cache, download failed, no embedded fallback", name)
	}
	data, err := fs.ReadFile(m.embedded, name+".xml")
	if err != nil {
		return nil, fmt.Errorf("pack %q unavailable: %w", name, err)
	}
	p, err := effect.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("embedded pack %q is invalid: %w", name, err)
	}
	return p, nil
}

func cacheProp(name string) string {
	return name + "@" + PackVersion
}
