package resolver

import (
	"fmt"

	"github.com/seitarof/gen-deepcopy/internal/descriptor"
)

// CopyStrategy identifies how a non-container value is copied.
type CopyStrategy int

const (
	StrategyPassthrough CopyStrategy = iota
	StrategyRegistered
	StrategySerializable
	StrategySelfCloning
)

func (s CopyStrategy) String() string {
	switch s {
	case StrategyPassthrough:
		return "passthrough"
	case StrategyRegistered:
		return "registered-deep-copyable"
	case StrategySerializable:
		return "serializable-round-trip"
	case StrategySelfCloning:
		return "self-cloning"
	default:
		return fmt.Sprintf("CopyStrategy(%d)", int(s))
	}
}

// LeafSpec is the copy plan of a non-container value.
type LeafSpec struct {
	Strategy CopyStrategy
	// ClonePointer is set for StrategySelfCloning when Clone returns *T.
	ClonePointer bool
	// Rule is the name of the rule that produced the spec.
	Rule string
}

// ElementSpec is the copy plan for one position: a field, a container
// element or a map value.
type ElementSpec struct {
	Type *descriptor.Descriptor
	Kind ContainerKind
	// Element is set iff Kind != KindNone. For sets it describes the
	// members, for maps the values; map keys are never copied.
	Element *ElementSpec
	// Leaf is meaningful iff Kind == KindNone.
	Leaf LeafSpec
}

// IsContainer reports whether the position is rebuilt element by element.
func (e *ElementSpec) IsContainer() bool {
	return e.Kind != KindNone
}

// FieldSpec is the copy plan of one record field.
type FieldSpec struct {
	Name string
	ElementSpec
}
