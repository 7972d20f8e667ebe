package resolver

import (
	"go/types"
	"slices"

	"github.com/seitarof/gen-deepcopy/internal/descriptor"
)

// Registry reports whether a named type will have a DeepCopy method once
// this run has generated its files. Types already declaring one are
// recognized without a registry.
type Registry interface {
	IsRegistered(pkgPath, name string) bool
}

// RegistryFunc adapts a function to Registry.
type RegistryFunc func(pkgPath, name string) bool

func (f RegistryFunc) IsRegistered(pkgPath, name string) bool { return f(pkgPath, name) }

// NameRegistry is a Registry over qualified names ("pkg/path.Name").
type NameRegistry []string

func (n NameRegistry) IsRegistered(pkgPath, name string) bool {
	return slices.Contains(n, qualify(pkgPath, name))
}

// Registries reports a type as registered when any of rs does.
func Registries(rs ...Registry) Registry {
	return RegistryFunc(func(pkgPath, name string) bool {
		for _, r := range rs {
			if r != nil && r.IsRegistered(pkgPath, name) {
				return true
			}
		}
		return false
	})
}

// DefaultRules returns built-in leaf rules in priority order.
func DefaultRules(registry Registry, immutable []string) []Rule {
	return []Rule{
		&ImmutableRule{Names: immutable},
		&SelfCloningRule{Registry: registry},
		&RegisteredRule{Registry: registry},
		&SerializableRule{},
	}
}

// ImmutableRule shares basic values and configured immutable types.
type ImmutableRule struct {
	Names []string
}

func (r *ImmutableRule) Name() string { return "immutable" }

func (r *ImmutableRule) Try(d *descriptor.Descriptor) (LeafSpec, bool) {
	if d.Shape == descriptor.Basic || slices.Contains(r.Names, d.BaseName) {
		return LeafSpec{Strategy: StrategyPassthrough}, true
	}
	return LeafSpec{}, false
}

// SelfCloningRule uses a Clone() method returning T or *T. Registered types
// are left to RegisteredRule.
type SelfCloningRule struct {
	Registry Registry
}

func (r *SelfCloningRule) Name() string { return "self-cloning" }

func (r *SelfCloningRule) Try(d *descriptor.Descriptor) (LeafSpec, bool) {
	named, ok := namedOf(d)
	if !ok || isRegistered(r.Registry, named) {
		return LeafSpec{}, false
	}
	ptr, ok := cloneResult(named)
	if !ok {
		return LeafSpec{}, false
	}
	return LeafSpec{Strategy: StrategySelfCloning, ClonePointer: ptr}, true
}

// RegisteredRule calls the generated DeepCopy of registered types.
type RegisteredRule struct {
	Registry Registry
}

func (r *RegisteredRule) Name() string { return "registered" }

func (r *RegisteredRule) Try(d *descriptor.Descriptor) (LeafSpec, bool) {
	named, ok := namedOf(d)
	if !ok || !isRegistered(r.Registry, named) {
		return LeafSpec{}, false
	}
	return LeafSpec{Strategy: StrategyRegistered}, true
}

// SerializableRule round-trips non-nullable values whose type can marshal
// and unmarshal itself.
type SerializableRule struct{}

func (r *SerializableRule) Name() string { return "serializable" }

func (r *SerializableRule) Try(d *descriptor.Descriptor) (LeafSpec, bool) {
	if d.Nullable {
		return LeafSpec{}, false
	}
	named, ok := namedOf(d)
	if !ok || d.Shape == descriptor.Interface {
		return LeafSpec{}, false
	}
	if !hasCodecPair(named) {
		return LeafSpec{}, false
	}
	return LeafSpec{Strategy: StrategySerializable}, true
}

var codecPairs = [][2]string{
	{"MarshalBinary", "UnmarshalBinary"},
	{"MarshalText", "UnmarshalText"},
	{"MarshalMsgpack", "UnmarshalMsgpack"},
	{"EncodeMsgpack", "DecodeMsgpack"},
}

func hasCodecPair(named *types.Named) bool {
	ms := types.NewMethodSet(types.NewPointer(named))
	for _, pair := range codecPairs {
		if ms.Lookup(nil, pair[0]) != nil && ms.Lookup(nil, pair[1]) != nil {
			return true
		}
	}
	return false
}

// cloneResult reports whether named has a Clone() method returning named or
// *named, and which of the two.
func cloneResult(named *types.Named) (pointer, ok bool) {
	sel := types.NewMethodSet(types.NewPointer(named)).Lookup(nil, "Clone")
	if sel == nil {
		return false, false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false, false
	}
	res := sig.Results().At(0).Type()
	if types.Identical(res, named) {
		return false, true
	}
	if p, isPtr := res.(*types.Pointer); isPtr && types.Identical(p.Elem(), named) {
		return true, true
	}
	return false, false
}

func namedOf(d *descriptor.Descriptor) (*types.Named, bool) {
	if d == nil || !d.Named || d.Type == nil {
		return nil, false
	}
	t := types.Unalias(d.Type)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}
	named, ok := t.(*types.Named)
	return named, ok
}

// isRegistered reports whether named is marked, configured, or already
// carries a DeepCopy method from an earlier run or another generator.
func isRegistered(r Registry, named *types.Named) bool {
	if HasDeepCopyMethod(named) {
		return true
	}
	if r == nil {
		return false
	}
	obj := named.Obj()
	if obj.Pkg() == nil {
		return false
	}
	return r.IsRegistered(obj.Pkg().Path(), obj.Name())
}

// HasDeepCopyMethod reports a DeepCopy method callable without arguments
// that returns *named.
func HasDeepCopyMethod(named *types.Named) bool {
	sel := types.NewMethodSet(types.NewPointer(named)).Lookup(nil, "DeepCopy")
	if sel == nil {
		return false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Results().Len() != 1 {
		return false
	}
	switch sig.Params().Len() {
	case 0:
	case 1:
		if !sig.Variadic() {
			return false
		}
	default:
		return false
	}
	p, ok := sig.Results().At(0).Type().(*types.Pointer)
	return ok && types.Identical(p.Elem(), named)
}

func qualify(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}
	return pkgPath + "." + name
}
