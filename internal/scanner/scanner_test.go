package scanner

import (
	"reflect"
	"testing"

	"github.com/tobyv/scenesweep/internal/project"
	"github.com/tobyv/scenesweep/internal/resolver"
)

func testProject() *project.Project {
	return project.New(map[string]any{
		"resources": map[string]any{
			"meshes": map[string]any{
				"a": map[string]any{
					"link": map[string]any{"file": "missing.glb"},
				},
				"b": map[string]any{
					"link": map[string]any{"file": "default"},
				},
				"c": map[string]any{},
			},
			"textures": map[string]any{
				"t1": map[string]any{
					"link": map[string]any{"file": "present.png"},
				},
			},
		},
	})
}

func testScanner(proj *project.Project, existing map[string]bool) *Scanner {
	stat := func(path string) bool { return existing[path] }
	return New(proj, resolver.NewWithStat(".", stat))
}

func TestScanClassifiesOrphans(t *testing.T) {
	proj := testProject()
	s := testScanner(proj, map[string]bool{"present.png": true})

	result := s.Scan()

	if !reflect.DeepEqual(result["meshes"], []string{"a"}) {
		t.Errorf("meshes = %v, want [a]", result["meshes"])
	}
	if len(result["textures"]) != 0 {
		t.Errorf("textures = %v, want empty", result["textures"])
	}
	// Every category is present in the result, even empty ones
	for _, category := range project.Categories {
		if _, ok := result[category]; !ok {
			t.Errorf("category %s missing from result", category)
		}
	}
	if result.Total() != 1 {
		t.Errorf("Total() = %d, want 1", result.Total())
	}
}

func TestScanSkipsSentinelAndUnlinked(t *testing.T) {
	proj := testProject()
	s := testScanner(proj, nil) // nothing exists

	result := s.Scan()

	// b links to "default", c has no link; neither may be orphaned even
	// though no file exists anywhere
	if !reflect.DeepEqual(result["meshes"], []string{"a"}) {
		t.Errorf("meshes = %v, want [a]", result["meshes"])
	}
}

func TestScanMalformedLinkIsSkipped(t *testing.T) {
	proj := project.New(map[string]any{
		"resources": map[string]any{
			"meshes": map[string]any{
				"bad1": map[string]any{"link": "not-a-record"},
				"bad2": map[string]any{"link": map[string]any{"file": 42.0}},
				"bad3": "not-a-record-at-all",
			},
		},
	})
	s := testScanner(proj, nil)

	if got := s.Scan().Total(); got != 0 {
		t.Errorf("Total() = %d, want 0 for malformed links", got)
	}
}

func TestDeleteOrphans(t *testing.T) {
	proj := testProject()
	s := testScanner(proj, map[string]bool{"present.png": true})

	result := s.Scan()
	s.DeleteOrphans(result)

	meshes := proj.Table("meshes")
	if meshes.Len() != 2 {
		t.Errorf("meshes has %d entries, want 2", meshes.Len())
	}
	if !reflect.DeepEqual(meshes.Keys(), []string{"b", "c"}) {
		t.Errorf("meshes keys = %v, want [b c]", meshes.Keys())
	}

	// DeleteOrphans re-scans, so the retained result is post-deletion
	if got := s.Last().Total(); got != 0 {
		t.Errorf("Last().Total() = %d after deletion, want 0", got)
	}
}

func TestScanResetsCacheBetweenScans(t *testing.T) {
	proj := project.New(map[string]any{
		"resources": map[string]any{
			"meshes": map[string]any{
				"a": map[string]any{
					"link": map[string]any{"file": "rock.glb"},
				},
			},
		},
	})
	existing := map[string]bool{"rock.glb": true}
	s := testScanner(proj, existing)

	if got := s.Scan().Total(); got != 0 {
		t.Fatalf("Total() = %d, want 0 while file exists", got)
	}

	// File vanishes between scans
	delete(existing, "rock.glb")
	if got := s.Scan().Total(); got != 1 {
		t.Errorf("Total() = %d after file removal, want 1", got)
	}
}
