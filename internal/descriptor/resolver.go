package descriptor

import (
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/seitarof/gen-deepcopy/internal/diagnostic"
)

// Resolver turns go/types types into Descriptors.
//
// A Resolver memoizes per type and is meant to live for one record type's
// synthesis run. It is not safe for concurrent use.
type Resolver struct {
	sink diagnostic.Sink
	memo typeutil.Map
}

// NewResolver returns a Resolver reporting unresolved types to sink.
func NewResolver(sink diagnostic.Sink) *Resolver {
	if sink == nil {
		sink = diagnostic.Discard()
	}
	return &Resolver{sink: sink}
}

// ResolveField resolves the declared type of one field and reports every
// level that could not be resolved. Resolution never fails: unresolved
// levels carry the Unresolved base name and are copied by reference.
func (r *Resolver) ResolveField(owner, field string, t types.Type) *Descriptor {
	d := r.Resolve(t)
	d.Walk(func(x *Descriptor) {
		if !x.IsUnresolved() {
			return
		}
		what := "<nil>"
		if x.Type != nil {
			what = x.Type.String()
		}
		diagnostic.Warnf(r.sink, diagnostic.CodeUnresolvedType, owner, field,
			"type %s could not be resolved, value will be shared with the source", what)
	})
	return d
}

// Resolve returns the descriptor for t.
func (r *Resolver) Resolve(t types.Type) *Descriptor {
	if t == nil {
		return unresolved(nil)
	}
	if cached, ok := r.memo.At(t).(*Descriptor); ok {
		return cached
	}
	d := r.resolve(t)
	r.memo.Set(t, d)
	return d
}

func (r *Resolver) resolve(t types.Type) *Descriptor {
	switch v := types.Unalias(t).(type) {
	case *types.Basic:
		if v.Kind() == types.Invalid {
			return unresolved(t)
		}
		return (&Descriptor{
			BaseName: v.Name(),
			Shape:    Basic,
			Nullable: v.Kind() == types.UnsafePointer,
			Type:     t,
		}).seal()
	case *types.Pointer:
		return r.resolvePointer(t, v)
	case *types.Slice:
		return (&Descriptor{
			BaseName:      Slice,
			Shape:         Slice,
			Nullable:      true,
			TypeArguments: []*Descriptor{r.Resolve(v.Elem())},
			Type:          t,
		}).seal()
	case *types.Array:
		return (&Descriptor{
			BaseName:      Array,
			Shape:         Array,
			Len:           v.Len(),
			TypeArguments: []*Descriptor{r.Resolve(v.Elem())},
			Type:          t,
		}).seal()
	case *types.Map:
		d := &Descriptor{
			BaseName:      Map,
			Shape:         Map,
			Nullable:      true,
			TypeArguments: []*Descriptor{r.Resolve(v.Key()), r.Resolve(v.Elem())},
			Type:          t,
		}
		if isEmptyStruct(v.Elem()) {
			d.Ancestors = []string{Set}
		}
		return d.seal()
	case *types.Signature:
		return (&Descriptor{BaseName: Func, Shape: Func, Nullable: true, Type: t}).seal()
	case *types.Chan:
		return (&Descriptor{BaseName: Chan, Shape: Chan, Nullable: true, Type: t}).seal()
	case *types.Interface:
		return (&Descriptor{BaseName: Interface, Shape: Interface, Nullable: true, Type: t}).seal()
	case *types.Struct:
		return (&Descriptor{BaseName: Struct, Shape: Struct, Type: t}).seal()
	case *types.TypeParam:
		return (&Descriptor{BaseName: TypeParam, Shape: TypeParam, Type: t}).seal()
	case *types.Named:
		return r.resolveNamed(t, v)
	default:
		return unresolved(t)
	}
}

// resolvePointer folds one level of pointer into the nullability of the
// pointee. Pointers to nil-able shapes and to pointers stay opaque.
func (r *Resolver) resolvePointer(t types.Type, p *types.Pointer) *Descriptor {
	switch p.Elem().Underlying().(type) {
	case *types.Slice, *types.Array, *types.Map, *types.Pointer,
		*types.Interface, *types.Signature, *types.Chan:
		return (&Descriptor{BaseName: Pointer, Shape: Pointer, Nullable: true, Type: t}).seal()
	}

	inner := r.Resolve(p.Elem())
	if inner.IsUnresolved() {
		return inner
	}
	d := *inner
	d.Nullable = true
	d.Type = t
	return &d
}

func (r *Resolver) resolveNamed(t types.Type, n *types.Named) *Descriptor {
	obj := n.Obj()
	base := obj.Name()
	if obj.Pkg() != nil {
		base = obj.Pkg().Path() + "." + obj.Name()
	}
	d := &Descriptor{BaseName: base, Named: true, Type: t}

	switch u := n.Underlying().(type) {
	case *types.Slice:
		d.Shape = Slice
		d.Nullable = true
		d.TypeArguments = []*Descriptor{r.Resolve(u.Elem())}
		d.Ancestors = []string{Slice}
	case *types.Array:
		d.Shape = Array
		d.Len = u.Len()
		d.TypeArguments = []*Descriptor{r.Resolve(u.Elem())}
		d.Ancestors = []string{Array}
	case *types.Map:
		d.Shape = Map
		d.Nullable = true
		d.TypeArguments = []*Descriptor{r.Resolve(u.Key()), r.Resolve(u.Elem())}
		d.Ancestors = []string{Map}
		if isEmptyStruct(u.Elem()) {
			d.Ancestors = []string{Set, Map}
		}
	case *types.Basic:
		if u.Kind() == types.Invalid {
			return unresolved(t)
		}
		d.Shape = Basic
		d.Nullable = u.Kind() == types.UnsafePointer
	case *types.Struct:
		d.Shape = Struct
		d.TypeArguments = r.resolveTypeArgs(n)
	case *types.Interface:
		d.Shape = Interface
		d.Nullable = true
		d.TypeArguments = r.resolveTypeArgs(n)
	case *types.Signature:
		d.Shape = Func
		d.Nullable = true
	case *types.Chan:
		d.Shape = Chan
		d.Nullable = true
	case *types.Pointer:
		d.Shape = Pointer
		d.Nullable = true
	default:
		return unresolved(t)
	}
	return d.seal()
}

func (r *Resolver) resolveTypeArgs(n *types.Named) []*Descriptor {
	args := n.TypeArgs()
	if args.Len() == 0 {
		return nil
	}
	out := make([]*Descriptor, 0, args.Len())
	for i := 0; i < args.Len(); i++ {
		out = append(out, r.Resolve(args.At(i)))
	}
	return out
}

func unresolved(t types.Type) *Descriptor {
	return (&Descriptor{BaseName: Unresolved, Shape: Unresolved, Type: t}).seal()
}

func isEmptyStruct(t types.Type) bool {
	st, ok := t.Underlying().(*types.Struct)
	return ok && st.NumFields() == 0
}
