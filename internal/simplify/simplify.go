package simplify

import (
	"github.com/chewxy/math32"
)

// Epsilon is the tolerance for every floating-point comparison in this
// package. Values closer than this are treated as equal.
const Epsilon = 1e-6

// Container is the minimal field access a vector simplification needs
type Container interface {
	Vec(key string) ([]float32, bool)
	SetVec(key string, v []float32)
	Delete(key string)
}

// FlagContainer is the minimal field access a flag simplification needs
type FlagContainer interface {
	Bool(key string) (bool, bool)
	Delete(key string)
}

// ApproxEqual reports whether a and b are equal within Epsilon
func ApproxEqual(a, b float32) bool {
	return math32.Abs(a-b) < Epsilon
}

// RoundToPowerOfTwo snaps v to the nearest power of two when it is already
// within Epsilon of one; otherwise v is returned unchanged. Near-zero values
// snap to exactly 0. Authoring tools tend to emit values like 0.99999998
// where 1.0 is meant, and snapping them cuts diff noise without a visible
// change.
func RoundToPowerOfTwo(v float32) float32 {
	if ApproxEqual(v, 0) {
		return 0
	}

	p := math32.Exp2(math32.Round(math32.Log2(math32.Abs(v))))
	if ApproxEqual(math32.Abs(v), p) {
		return math32.Copysign(p, v)
	}
	return v
}

// Vector rounds each component of the named vector field and then either
// deletes the field (when the rounded vector equals def componentwise and
// allowDelete is set), writes the rounded vector back (when any component
// changed), or leaves the field untouched. An absent or malformed field is a
// no-op. Reports whether the field was modified.
func Vector(c Container, key string, def []float32, allowDelete bool) bool {
	v, ok := c.Vec(key)
	if !ok {
		return false
	}

	changed := false
	isDefault := len(v) == len(def)
	// Last component first; components are independent, the order just keeps
	// the pass deterministic.
	for i := len(v) - 1; i >= 0; i-- {
		r := RoundToPowerOfTwo(v[i])
		if r != v[i] {
			v[i] = r
			changed = true
		}
		if isDefault && !ApproxEqual(v[i], def[i]) {
			isDefault = false
		}
	}

	if isDefault && allowDelete {
		c.Delete(key)
		return true
	}
	if changed {
		c.SetVec(key, v)
		return true
	}
	return false
}

// Flag deletes the named boolean field when it exactly equals def; absence
// then implies the default. Booleans compare exactly, there is no tolerance
// to apply. Reports whether the field was removed.
func Flag(c FlagContainer, key string, def bool) bool {
	v, ok := c.Bool(key)
	if !ok || v != def {
		return false
	}
	c.Delete(key)
	return true
}
