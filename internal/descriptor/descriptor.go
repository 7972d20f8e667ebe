// Package descriptor normalizes go/types types into Descriptors: a qualified
// base name, ordered type arguments and a nullability flag at every level.
package descriptor

import (
	"go/types"
	"strconv"
	"strings"
)

// Base names used for unnamed shapes. A defined type uses its qualified name
// and lists the shape of its underlying type among its ancestors.
const (
	Unresolved = "unresolved"
	Slice      = "slice"
	Array      = "array"
	Map        = "map"
	// Set is never a base name. It is the extra ancestor of map[K]struct{}.
	Set       = "set"
	Pointer   = "pointer"
	Func      = "func"
	Chan      = "chan"
	Interface = "interface"
	Struct    = "struct"
	TypeParam = "typeparam"
	Basic     = "basic"
)

// Descriptor is the normalized view of one declared type occurrence.
// It is built once by a Resolver and never mutated afterwards.
type Descriptor struct {
	// BaseName is the fully qualified identifier ("int",
	// "example.com/m/model.Item") or a shape name for unnamed types.
	BaseName string
	// TypeArguments are element descriptors for slices and arrays ([elem]),
	// maps ([key, value]) and generic instantiations.
	TypeArguments []*Descriptor
	// Nullable reports whether this level can be absent (nil).
	Nullable bool
	// Len is the array length; zero for everything else.
	Len int64
	// Shape is the shape name of the underlying type.
	Shape string
	// Named is true for defined (and instantiated) types.
	Named bool
	// Ancestors is the one-level supertype chain derived from the
	// underlying type.
	Ancestors []string
	// Type is the declared type at this position, pointer included.
	// It is used for rendering only and takes no part in Equal.
	Type types.Type

	chain []string
}

// Chain returns the base name followed by the ancestors.
func (d *Descriptor) Chain() []string {
	return d.chain
}

// HasInChain reports whether name is the base name or an ancestor.
func (d *Descriptor) HasInChain(name string) bool {
	for _, n := range d.chain {
		if n == name {
			return true
		}
	}
	return false
}

// IsUnresolved reports whether this level failed to resolve.
func (d *Descriptor) IsUnresolved() bool {
	return d.BaseName == Unresolved
}

// Elem returns the element descriptor of a slice, array, set or map value.
func (d *Descriptor) Elem() *Descriptor {
	switch d.Shape {
	case Slice, Array:
		if len(d.TypeArguments) == 1 {
			return d.TypeArguments[0]
		}
	case Map:
		if len(d.TypeArguments) == 2 {
			return d.TypeArguments[1]
		}
	}
	return nil
}

// Key returns the key descriptor of a map (the element of a set).
func (d *Descriptor) Key() *Descriptor {
	if d.Shape == Map && len(d.TypeArguments) == 2 {
		return d.TypeArguments[0]
	}
	return nil
}

// Walk calls fn for d and every nested type argument, depth-first.
func (d *Descriptor) Walk(fn func(*Descriptor)) {
	if d == nil {
		return
	}
	fn(d)
	for _, a := range d.TypeArguments {
		a.Walk(fn)
	}
}

// Equal reports whether two descriptors have the same base name, length,
// nullability and type arguments, in order.
func (d *Descriptor) Equal(o *Descriptor) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.BaseName != o.BaseName || d.Nullable != o.Nullable || d.Len != o.Len {
		return false
	}
	if len(d.TypeArguments) != len(o.TypeArguments) {
		return false
	}
	for i := range d.TypeArguments {
		if !d.TypeArguments[i].Equal(o.TypeArguments[i]) {
			return false
		}
	}
	return true
}

// String renders the descriptor as base<args>? for logs and test output.
func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(d.BaseName)
	if d.Shape == Array && !d.Named {
		b.WriteString("[" + strconv.FormatInt(d.Len, 10) + "]")
	}
	if len(d.TypeArguments) > 0 {
		b.WriteString("<")
		for i, a := range d.TypeArguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteString(">")
	}
	if d.Nullable {
		b.WriteString("?")
	}
	return b.String()
}

func (d *Descriptor) seal() *Descriptor {
	d.chain = make([]string, 0, 1+len(d.Ancestors))
	d.chain = append(d.chain, d.BaseName)
	d.chain = append(d.chain, d.Ancestors...)
	return d
}
