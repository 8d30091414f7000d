package normalize

import (
	"github.com/tobyv/scenesweep/internal/project"
	"github.com/tobyv/scenesweep/internal/simplify"
)

// Canonical transform defaults. Absence of the field on an unlinked object
// implies these; linked objects keep their fields explicit because their
// defaults are defined by the external source.
var (
	defaultTranslation = []float32{0, 0, 0}
	defaultScaling     = []float32{1, 1, 1}
	defaultRotation    = []float32{0, 0, 0, 1} // identity quaternion
)

// Stats counts what one normalization pass changed
type Stats struct {
	Transforms   int // transform fields rounded or removed
	Flags        int // active flags removed
	Holes        int // empty component slots removed
	EmptiedLists int // component-list fields removed outright
}

// Total returns the overall number of changes
func (s Stats) Total() int {
	return s.Transforms + s.Flags + s.Holes + s.EmptiedLists
}

// Normalizer simplifies every object in the project: transform fields are
// rounded and default-pruned, component active flags are default-pruned, and
// unlinked objects get their component lists compacted.
type Normalizer struct {
	proj  *project.Project
	stats Stats
}

// New creates a normalizer over the given project
func New(proj *project.Project) *Normalizer {
	return &Normalizer{proj: proj}
}

// Normalize runs the pass over all objects. The return value tells the save
// hook whether persisting may proceed; this pass never blocks a save.
func (n *Normalizer) Normalize() bool {
	n.stats = Stats{}
	for _, key := range n.proj.ObjectKeys() {
		obj, ok := n.proj.Object(key)
		if !ok {
			continue
		}
		n.normalizeObject(obj)
	}
	return true
}

// Stats returns the counters from the most recent pass
func (n *Normalizer) Stats() Stats {
	return n.stats
}

func (n *Normalizer) normalizeObject(obj project.Object) {
	linked := obj.Linked()

	if simplify.Vector(obj, project.FieldTranslation, defaultTranslation, !linked) {
		n.stats.Transforms++
	}
	if simplify.Vector(obj, project.FieldScaling, defaultScaling, !linked) {
		n.stats.Transforms++
	}
	if simplify.Vector(obj, project.FieldRotation, defaultRotation, !linked) {
		n.stats.Transforms++
	}

	slots, ok := obj.Components()
	if !ok {
		return
	}

	if linked {
		// Holes stay put on linked objects; only the active flags get pruned.
		// Index Len() holds no slot and falls through the hole check.
		for i := slots.Len(); i >= 0; i-- {
			c, ok := slots.Component(i)
			if !ok {
				continue
			}
			if simplify.Flag(c, project.FieldActive, true) {
				n.stats.Flags++
			}
		}
		return
	}

	var kept project.Slots
	for i := 0; i <= slots.Len(); i++ {
		c, ok := slots.Component(i)
		if !ok {
			if i < slots.Len() {
				n.stats.Holes++
			}
			continue
		}
		if simplify.Flag(c, project.FieldActive, true) {
			n.stats.Flags++
		}
		kept.Append(c)
	}

	if kept.Len() == 0 {
		obj.Delete(project.FieldComponents)
		n.stats.EmptiedLists++
		return
	}
	obj.SetComponents(kept)
}
