package resolver

import (
	"fmt"

	"github.com/seitarof/gen-deepcopy/internal/config"
	"github.com/seitarof/gen-deepcopy/internal/descriptor"
)

// ContainerKind identifies how a container field is rebuilt.
type ContainerKind int

const (
	KindNone ContainerKind = iota
	KindArray
	KindFixedList
	KindGrowableList
	KindHashSet
	KindGrowableSet
	KindSet
	KindHashMap
	KindGrowableMap
	KindMap
)

// kindOrder is the detection priority: specific kinds before general ones.
var kindOrder = []ContainerKind{
	KindArray,
	KindFixedList,
	KindGrowableList,
	KindHashSet,
	KindGrowableSet,
	KindSet,
	KindHashMap,
	KindGrowableMap,
	KindMap,
}

var kindConfigNames = map[string]ContainerKind{
	config.KindArray:        KindArray,
	config.KindFixedList:    KindFixedList,
	config.KindGrowableList: KindGrowableList,
	config.KindHashSet:      KindHashSet,
	config.KindGrowableSet:  KindGrowableSet,
	config.KindSet:          KindSet,
	config.KindHashMap:      KindHashMap,
	config.KindGrowableMap:  KindGrowableMap,
	config.KindMap:          KindMap,
}

func (k ContainerKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindArray:
		return "array"
	case KindFixedList:
		return "fixed-list"
	case KindGrowableList:
		return "growable-list"
	case KindHashSet:
		return "hash-set"
	case KindGrowableSet:
		return "growable-set"
	case KindSet:
		return "set"
	case KindHashMap:
		return "hash-map"
	case KindGrowableMap:
		return "growable-map"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("ContainerKind(%d)", int(k))
	}
}

// IsList reports whether k is rebuilt from a slice.
func (k ContainerKind) IsList() bool {
	return k == KindFixedList || k == KindGrowableList
}

// IsSet reports whether k is rebuilt from a map[K]struct{}.
func (k ContainerKind) IsSet() bool {
	return k == KindHashSet || k == KindGrowableSet || k == KindSet
}

// IsMap reports whether k is rebuilt from a map with copied values.
func (k ContainerKind) IsMap() bool {
	return k == KindHashMap || k == KindGrowableMap || k == KindMap
}

// KindRegistry binds base names to container kinds.
type KindRegistry struct {
	names map[ContainerKind]map[string]struct{}
}

// NewKindRegistry builds a registry from config kind bindings.
func NewKindRegistry(bindings map[string][]string) (*KindRegistry, error) {
	r := &KindRegistry{names: make(map[ContainerKind]map[string]struct{}, len(kindOrder))}
	for name, baseNames := range bindings {
		kind, ok := kindConfigNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown container kind %q", name)
		}
		for _, b := range baseNames {
			r.Bind(kind, b)
		}
	}
	return r, nil
}

// DefaultKindRegistry returns the registry for config.DefaultKinds.
func DefaultKindRegistry() *KindRegistry {
	r, err := NewKindRegistry(config.DefaultKinds())
	if err != nil {
		panic(err)
	}
	return r
}

// Bind adds baseName to kind.
func (r *KindRegistry) Bind(kind ContainerKind, baseName string) {
	set, ok := r.names[kind]
	if !ok {
		set = make(map[string]struct{})
		r.names[kind] = set
	}
	set[baseName] = struct{}{}
}

// Kind returns the container kind of d. For a defined type, a kind bound to
// its own name wins over its ancestors. Otherwise kinds are tested in
// priority order against the whole chain, and a binding only counts when
// the shape fits.
func (r *KindRegistry) Kind(d *descriptor.Descriptor) ContainerKind {
	if d == nil || d.IsUnresolved() {
		return KindNone
	}
	chain := d.Chain()
	if d.Named {
		if kind := r.match(d, chain[:1]); kind != KindNone {
			return kind
		}
		chain = chain[1:]
	}
	return r.match(d, chain)
}

func (r *KindRegistry) match(d *descriptor.Descriptor, names []string) ContainerKind {
	for _, kind := range kindOrder {
		if !shapeFits(kind, d) {
			continue
		}
		set := r.names[kind]
		for _, name := range names {
			if _, ok := set[name]; ok {
				return kind
			}
		}
	}
	return KindNone
}

func shapeFits(kind ContainerKind, d *descriptor.Descriptor) bool {
	switch {
	case kind == KindArray:
		return d.Shape == descriptor.Array
	case kind.IsList():
		return d.Shape == descriptor.Slice
	case kind.IsSet():
		return d.Shape == descriptor.Map && d.HasInChain(descriptor.Set)
	case kind.IsMap():
		return d.Shape == descriptor.Map
	default:
		return false
	}
}
