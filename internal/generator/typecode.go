package generator

import (
	"go/types"

	"github.com/dave/jennifer/jen"
)

// typeCode renders t for use inside a file of package pkgPath. Shapes
// jennifer has no builder for are written as text; the goimports pass adds
// their imports.
func (r *renderer) typeCode(t types.Type) jen.Code {
	switch v := t.(type) {
	case *types.Alias:
		obj := v.Obj()
		if obj.Pkg() == nil {
			return jen.Id(obj.Name())
		}
		if v.TypeArgs().Len() > 0 {
			return r.typeCode(types.Unalias(v))
		}
		return jen.Qual(obj.Pkg().Path(), obj.Name())
	case *types.Basic:
		if v.Kind() == types.UnsafePointer {
			return jen.Qual("unsafe", "Pointer")
		}
		return jen.Id(v.Name())
	case *types.Pointer:
		return jen.Op("*").Add(r.typeCode(v.Elem()))
	case *types.Slice:
		return jen.Index().Add(r.typeCode(v.Elem()))
	case *types.Array:
		return jen.Index(jen.Lit(int(v.Len()))).Add(r.typeCode(v.Elem()))
	case *types.Map:
		return jen.Map(r.typeCode(v.Key())).Add(r.typeCode(v.Elem()))
	case *types.Chan:
		if v.Dir() == types.SendRecv {
			return jen.Chan().Add(r.typeCode(v.Elem()))
		}
	case *types.Named:
		obj := v.Obj()
		var c *jen.Statement
		if obj.Pkg() == nil {
			c = jen.Id(obj.Name())
		} else {
			c = jen.Qual(obj.Pkg().Path(), obj.Name())
		}
		if args := v.TypeArgs(); args.Len() > 0 {
			list := make([]jen.Code, 0, args.Len())
			for i := 0; i < args.Len(); i++ {
				list = append(list, r.typeCode(args.At(i)))
			}
			c = c.Types(list...)
		}
		return c
	case *types.TypeParam:
		return jen.Id(v.Obj().Name())
	case *types.Interface:
		if v.Empty() && !v.IsImplicit() {
			return jen.Interface()
		}
	}
	return jen.Id(types.TypeString(t, r.qualifier))
}

func (r *renderer) qualifier(p *types.Package) string {
	if p == nil || p.Path() == r.pkgPath {
		return ""
	}
	return p.Name()
}
