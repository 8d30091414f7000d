package project

// Field names on scene objects
const (
	FieldTranslation = "translation"
	FieldScaling     = "scaling"
	FieldRotation    = "rotation"
	FieldComponents  = "components"
	FieldLink        = "link"
	FieldActive      = "active"
)

// Object is one scene object inside the project document. It exposes the
// field operations the cleanup passes need (presence test, read, write,
// delete) without committing callers to the underlying JSON shape.
type Object struct {
	m map[string]any
}

// NewObject wraps a raw object map (used by tests)
func NewObject(m map[string]any) Object {
	return Object{m: m}
}

// Has reports whether the field is present
func (o Object) Has(key string) bool {
	_, ok := o.m[key]
	return ok
}

// Linked reports whether the object carries a link marker, meaning its
// definition comes from an external source rather than this project.
func (o Object) Linked() bool {
	return o.Has(FieldLink)
}

// Vec reads a numeric list field as float32 components. Absent or malformed
// fields (wrong type, non-numeric entries) report false.
func (o Object) Vec(key string) ([]float32, bool) {
	raw, ok := o.m[key].([]any)
	if !ok {
		return nil, false
	}
	v := make([]float32, len(raw))
	for i, c := range raw {
		f, ok := c.(float64)
		if !ok {
			return nil, false
		}
		v[i] = float32(f)
	}
	return v, true
}

// SetVec writes a numeric list field
func (o Object) SetVec(key string, v []float32) {
	raw := make([]any, len(v))
	for i, c := range v {
		raw[i] = float64(c)
	}
	o.m[key] = raw
}

// Delete removes the field entirely
func (o Object) Delete(key string) {
	delete(o.m, key)
}

// Components returns the object's component slot list
func (o Object) Components() (Slots, bool) {
	raw, ok := o.m[FieldComponents].([]any)
	if !ok {
		return Slots{}, false
	}
	return Slots{raw: raw}, true
}

// SetComponents replaces the component slot list
func (o Object) SetComponents(s Slots) {
	o.m[FieldComponents] = s.raw
}

// ============================================================================
// Component Slots
// ============================================================================

// Slots is an ordered component slot list; a slot either holds a component
// record or is a hole (null, or anything that is not a record).
type Slots struct {
	raw []any
}

// NewSlots wraps a raw slot list (used by tests)
func NewSlots(raw []any) Slots {
	return Slots{raw: raw}
}

// Len returns the number of slots
func (s Slots) Len() int {
	return len(s.raw)
}

// Component returns the component at index i. Holes and out-of-range indices
// report false.
func (s Slots) Component(i int) (Component, bool) {
	if i < 0 || i >= len(s.raw) {
		return Component{}, false
	}
	m, ok := s.raw[i].(map[string]any)
	if !ok {
		return Component{}, false
	}
	return Component{m: m}, true
}

// Append adds a slot holding the given component
func (s *Slots) Append(c Component) {
	s.raw = append(s.raw, c.m)
}

// Component is one component record
type Component struct {
	m map[string]any
}

// NewComponent wraps a raw component map (used by tests)
func NewComponent(m map[string]any) Component {
	return Component{m: m}
}

// Has reports whether the field is present
func (c Component) Has(key string) bool {
	_, ok := c.m[key]
	return ok
}

// Bool reads a boolean field; absent or non-boolean fields report false
func (c Component) Bool(key string) (bool, bool) {
	v, ok := c.m[key].(bool)
	return v, ok
}

// Delete removes the field entirely
func (c Component) Delete(key string) {
	delete(c.m, key)
}

// Len returns the number of fields on the component
func (c Component) Len() int {
	return len(c.m)
}
