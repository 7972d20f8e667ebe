package parser

import "go/types"

// collectFields returns the struct's fields in declaration order. Blank
// fields are skipped since they can be neither read nor set.
func collectFields(st *types.Struct) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Name() == "_" {
			continue
		}
		fields = append(fields, FieldInfo{
			Name:       f.Name(),
			Type:       f.Type(),
			Embedded:   f.Embedded(),
			IsExported: f.Exported(),
		})
	}
	return fields
}

func extractStructType(t types.Type) (*types.Struct, bool) {
	switch v := t.(type) {
	case *types.Alias:
		return extractStructType(v.Rhs())
	case *types.Named:
		return extractStructType(v.Underlying())
	case *types.Struct:
		return v, true
	default:
		return nil, false
	}
}

// shapeName names the underlying shape of a non-struct declaration.
func shapeName(t types.Type) string {
	switch t.Underlying().(type) {
	case *types.Basic:
		return "a basic type"
	case *types.Interface:
		return "an interface"
	case *types.Slice:
		return "a slice"
	case *types.Array:
		return "an array"
	case *types.Map:
		return "a map"
	case *types.Pointer:
		return "a pointer"
	case *types.Signature:
		return "a func"
	case *types.Chan:
		return "a chan"
	default:
		return "not a struct"
	}
}

// referencedPackages adds the packages of every named type reachable from t
// through pointers, containers and type arguments. Struct fields of named
// types are not followed.
func referencedPackages(t types.Type, out map[string]struct{}, seen map[*types.Named]bool) {
	switch v := t.(type) {
	case *types.Alias:
		referencedPackages(types.Unalias(v), out, seen)
	case *types.Named:
		if seen[v] {
			return
		}
		seen[v] = true
		if obj := v.Obj(); obj.Pkg() != nil {
			out[obj.Pkg().Path()] = struct{}{}
		}
		args := v.TypeArgs()
		for i := 0; i < args.Len(); i++ {
			referencedPackages(args.At(i), out, seen)
		}
		switch u := v.Underlying().(type) {
		case *types.Slice, *types.Array, *types.Map, *types.Pointer:
			referencedPackages(u, out, seen)
		}
	case *types.Pointer:
		referencedPackages(v.Elem(), out, seen)
	case *types.Slice:
		referencedPackages(v.Elem(), out, seen)
	case *types.Array:
		referencedPackages(v.Elem(), out, seen)
	case *types.Map:
		referencedPackages(v.Key(), out, seen)
		referencedPackages(v.Elem(), out, seen)
	}
}
