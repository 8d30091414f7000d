package scanner

import (
	"github.com/tobyv/scenesweep/internal/project"
	"github.com/tobyv/scenesweep/internal/resolver"
)

// Result maps each resource category to the keys classified as orphaned by
// one scan, in table enumeration order. It reflects the moment of the scan,
// not the live project state.
type Result map[string][]string

// Total returns the number of orphaned keys across all categories
func (r Result) Total() int {
	n := 0
	for _, keys := range r {
		n += len(keys)
	}
	return n
}

// Scanner classifies project resources as live or orphaned based on whether
// their declared backing file still exists.
type Scanner struct {
	proj *project.Project
	res  *resolver.Resolver
	last Result
}

// New creates a scanner over the given project and resolver
func New(proj *project.Project, res *resolver.Resolver) *Scanner {
	return &Scanner{proj: proj, res: res}
}

// Scan walks every resource category and returns the orphaned keys per
// category. The resolver cache is cleared first, so each distinct file path
// is existence-checked at most once per scan and never across scans. A
// resource without a usable link.file, or linked to the "default" sentinel,
// is never classified orphaned.
func (s *Scanner) Scan() Result {
	s.res.Reset()

	result := make(Result, len(project.Categories))
	for _, category := range project.Categories {
		table := s.proj.Table(category)
		orphans := []string{}
		for _, key := range table.Keys() {
			file, ok := table.LinkFile(key)
			if !ok || file == project.LinkDefault {
				continue
			}
			if !s.res.Exists(file) {
				orphans = append(orphans, key)
			}
		}
		result[category] = orphans
	}

	s.last = result
	return result
}

// DeleteOrphans removes every key listed in result from the corresponding
// category table, then re-scans so the retained result reflects the
// post-deletion state.
func (s *Scanner) DeleteOrphans(result Result) {
	for _, category := range project.Categories {
		table := s.proj.Table(category)
		for _, key := range result[category] {
			table.Delete(key)
		}
	}
	s.Scan()
}

// Last returns the result of the most recent scan (nil before the first)
func (s *Scanner) Last() Result {
	return s.last
}
