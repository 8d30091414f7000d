package resolver

import (
	"os"
	"path/filepath"
)

// StatFunc answers whether a path exists on disk
type StatFunc func(path string) bool

func statFile(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Resolver answers whether a resource's backing file exists, memoizing the
// answer per path for the duration of one scan. Relative paths are tried
// under the project root first, then as given (covers absolute paths).
type Resolver struct {
	root  string
	stat  StatFunc
	cache map[string]bool
}

// New creates a resolver rooted at the project directory
func New(root string) *Resolver {
	return NewWithStat(root, statFile)
}

// NewWithStat creates a resolver with a custom existence primitive
func NewWithStat(root string, stat StatFunc) *Resolver {
	return &Resolver{
		root:  root,
		stat:  stat,
		cache: make(map[string]bool),
	}
}

// Reset clears the memo cache. Called at the start of every scan so results
// never leak from one scan into the next.
func (r *Resolver) Reset() {
	r.cache = make(map[string]bool)
}

// Exists reports whether path resolves to an existing file. The cache key is
// the original path string, not the resolved one.
func (r *Resolver) Exists(path string) bool {
	if found, ok := r.cache[path]; ok {
		return found
	}

	found := r.stat(filepath.Join(r.root, path))
	if !found {
		found = r.stat(path)
	}

	r.cache[path] = found
	return found
}
