package suggest

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hbollon/go-edlib"
)

const (
	// Fuzzy matching config
	similarityThreshold = 0.7 // 70% similarity to count as a plausible rename
	minNameLength       = 4   // skip tiny names, too easy to match by accident

	// Walk cap, keeps huge asset trees from dominating a scan
	maxCandidates = 5000
)

// Candidates walks the project root once and collects relative file paths
// that could be offered as replacements for missing links. Hidden
// directories (.git, .scenesweep, ...) are skipped.
func Candidates(root string) []string {
	var paths []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, nothing to offer from it
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if len(paths) >= maxCandidates {
			return filepath.SkipAll
		}
		if rel, err := filepath.Rel(root, path); err == nil {
			paths = append(paths, rel)
		}
		return nil
	})
	return paths
}

// Closest picks the candidate whose basename is most similar to the missing
// path's basename. Returns false when nothing clears the threshold.
// Damerau-Levenshtein handles the common cases: typos, swapped characters,
// version-suffix renames.
func Closest(missing string, candidates []string) (string, bool) {
	target := filepath.Base(missing)
	if len(target) < minNameLength {
		return "", false
	}

	best := ""
	var bestScore float32
	for _, candidate := range candidates {
		name := filepath.Base(candidate)
		if name == target {
			// Same basename elsewhere in the tree beats any fuzzy match
			return candidate, true
		}
		score, err := edlib.StringsSimilarity(target, name, edlib.DamerauLevenshtein)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if bestScore >= similarityThreshold {
		return best, true
	}
	return "", false
}
