package suggest

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
}

func TestCandidates(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"assets/rock.glb",
		"assets/textures/dirt.png",
		".git/config",
		".scenesweep/backups/01ABC",
	)

	got := Candidates(root)
	sort.Strings(got)

	want := []string{
		filepath.Join("assets", "rock.glb"),
		filepath.Join("assets", "textures", "dirt.png"),
	}
	if len(got) != len(want) {
		t.Fatalf("Candidates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClosestExactBasename(t *testing.T) {
	candidates := []string{
		filepath.Join("assets", "moved", "rock.glb"),
		filepath.Join("assets", "tree.glb"),
	}

	got, ok := Closest("old/rock.glb", candidates)
	if !ok || got != filepath.Join("assets", "moved", "rock.glb") {
		t.Errorf("Closest() = %q, %v, want relocated rock.glb", got, ok)
	}
}

func TestClosestFuzzy(t *testing.T) {
	candidates := []string{
		filepath.Join("assets", "rock_v2.glb"),
		filepath.Join("assets", "skybox.hdr"),
	}

	got, ok := Closest("assets/rock_v1.glb", candidates)
	if !ok || got != filepath.Join("assets", "rock_v2.glb") {
		t.Errorf("Closest() = %q, %v, want rock_v2.glb", got, ok)
	}
}

func TestClosestNothingSimilar(t *testing.T) {
	candidates := []string{filepath.Join("assets", "skybox.hdr")}

	if got, ok := Closest("old/character.fbx", candidates); ok {
		t.Errorf("Closest() = %q, want no match", got)
	}
}

func TestClosestSkipsTinyNames(t *testing.T) {
	if _, ok := Closest("a.b", []string{"a.c"}); ok {
		t.Error("Closest() should ignore names below the minimum length")
	}
}
