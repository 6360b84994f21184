package pack

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/quasilyte/gdata/v2"
)

const validPackXML = `<Emitter>
  <Name>Paper</Name>
  <Weight>1</Weight>
  <ParticleDuration>[900 1600]</ParticleDuration>
</Emitter>`

func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	appName := fmt.Sprintf("confetti_pack_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil
	}

	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			testDir := filepath.Join(homeDir, ".local", "share", appName)
			os.RemoveAll(testDir)
		}
	})

	return manager
}

func embeddedFS() fstest.MapFS {
	return fstest.MapFS{
		"celebration.xml": &fstest.MapFile{Data: []byte(validPackXML)},
	}
}

func TestResolve_DownloadsFromRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/celebration.xml" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, validPackXML)
	}))
	defer server.Close()

	m := NewManager(nil, nil, server.URL+"/")
	p, err := m.Resolve("celebration")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(p.Emitters) != 1 || p.Emitters[0].Name != "Paper" {
		t.Errorf("unexpected pack content: %+v", p)
	}
}

func TestResolve_CachesDownload(t *testing.T) {
	gdataManager := createTestGdataManager(t, "cache")
	if gdataManager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		fmt.Fprint(w, validPackXML)
	}))
	defer server.Close()

	m := NewManager(gdataManager, nil, server.URL+"/")
	if _, err := m.Resolve("celebration"); err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	if _, err := m.Resolve("celebration"); err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if got := atomic.LoadInt32(&requests); got != 1 {
		t.Errorf("expected 1 download, got %d", got)
	}
}

func TestResolve_EmbeddedFallbackWhenDownloadFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	m := NewManager(nil, embeddedFS(), server.URL+"/")
	p, err := m.Resolve("celebration")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(p.Emitters) != 1 {
		t.Errorf("expected embedded pack with 1 emitter, got %d", len(p.Emitters))
	}
}

func TestResolve_InvalidRemotePackFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not xml at all <<<")
	}))
	defer server.Close()

	m := NewManager(nil, embeddedFS(), server.URL+"/")
	p, err := m.Resolve("celebration")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(p.Emitters) != 1 {
		t.Errorf("expected embedded pack, got %+v", p)
	}
}

func TestResolve_AllSourcesExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	m := NewManager(nil, nil, server.URL+"/")
	if _, err := m.Resolve("celebration"); err == nil {
		t.Error("expected error when every source fails")
	}
}

func TestResolve_CorruptCacheEntryRefetches(t *testing.T) {
	gdataManager := createTestGdataManager(t, "corrupt")
	if gdataManager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	if err := gdataManager.SaveObjectProp(cacheObject, cacheProp("celebration"), []byte("garbage")); err != nil {
		t.Fatalf("failed to seed corrupt cache entry: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, validPackXML)
	}))
	defer server.Close()

	m := NewManager(gdataManager, nil, server.URL+"/")
	p, err := m.Resolve("celebration")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(p.Emitters) != 1 {
		t.Errorf("expected re-fetched pack, got %+v", p)
	}
}
