package resolver

import (
	"path/filepath"
	"testing"
)

// countingStat tracks every existence probe so tests can verify memoization
type countingStat struct {
	existing map[string]bool
	calls    int
}

func (s *countingStat) stat(path string) bool {
	s.calls++
	return s.existing[path]
}

func TestExistsUnderRoot(t *testing.T) {
	stat := &countingStat{existing: map[string]bool{
		filepath.Join("root", "assets", "rock.glb"): true,
	}}
	r := NewWithStat("root", stat.stat)

	if !r.Exists("assets/rock.glb") {
		t.Error("Exists() = false for file under root")
	}
	if r.Exists("assets/tree.glb") {
		t.Error("Exists() = true for missing file")
	}
}

func TestExistsFallsBackToRawPath(t *testing.T) {
	stat := &countingStat{existing: map[string]bool{
		"/abs/rock.glb": true,
	}}
	r := NewWithStat("root", stat.stat)

	if !r.Exists("/abs/rock.glb") {
		t.Error("Exists() = false for absolute path")
	}
}

func TestExistsMemoizesPerPath(t *testing.T) {
	stat := &countingStat{existing: map[string]bool{
		filepath.Join("root", "a.png"): true,
	}}
	r := NewWithStat("root", stat.stat)

	r.Exists("a.png")
	hitCalls := stat.calls
	for i := 0; i < 5; i++ {
		if !r.Exists("a.png") {
			t.Fatal("cached Exists() flipped to false")
		}
	}
	if stat.calls != hitCalls {
		t.Errorf("stat called %d times after caching, want %d", stat.calls, hitCalls)
	}

	// Misses probe both locations but are cached all the same
	r.Exists("b.png")
	missCalls := stat.calls
	r.Exists("b.png")
	if stat.calls != missCalls {
		t.Errorf("stat called %d times for cached miss, want %d", stat.calls, missCalls)
	}
}

func TestResetDropsCache(t *testing.T) {
	stat := &countingStat{existing: map[string]bool{
		filepath.Join("root", "a.png"): true,
	}}
	r := NewWithStat("root", stat.stat)

	if !r.Exists("a.png") {
		t.Fatal("Exists() = false before deletion")
	}

	// The file disappears between scans; a fresh scan must notice
	delete(stat.existing, filepath.Join("root", "a.png"))
	if !r.Exists("a.png") {
		t.Fatal("cached result should survive within one scan")
	}

	r.Reset()
	if r.Exists("a.png") {
		t.Error("Exists() = true after Reset() on deleted file")
	}
}
