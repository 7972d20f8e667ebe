package generator

import (
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/seitarof/gen-deepcopy/internal/resolver"
)

// RoundtripPkg is the import path of the fallback serialization helper.
const RoundtripPkg = "github.com/seitarof/gen-deepcopy/roundtrip"

// copyStmts returns statements assigning a copy of src to dst.
func (r *renderer) copyStmts(dst, src jen.Code, e *resolver.ElementSpec, depth int) []jen.Code {
	if e.IsContainer() {
		return r.containerStmts(dst, src, e, depth)
	}
	return r.leafStmts(dst, src, e, depth)
}

// leafExpr returns a single expression copying src, when the strategy
// needs no guard or temporary.
func (r *renderer) leafExpr(src jen.Code, e *resolver.ElementSpec) (jen.Code, bool) {
	leaf := e.Leaf
	if leaf.Strategy == resolver.StrategyPassthrough {
		return src, true
	}
	if e.Type.Nullable {
		return nil, false
	}
	switch leaf.Strategy {
	case resolver.StrategyRegistered:
		return jen.Op("*").Add(src).Dot("DeepCopy").Call(), true
	case resolver.StrategySerializable:
		return jen.Qual(RoundtripPkg, "Copy").Call(src), true
	case resolver.StrategySelfCloning:
		if !leaf.ClonePointer {
			return jen.Add(src).Dot("Clone").Call(), true
		}
	}
	return nil, false
}

func (r *renderer) leafStmts(dst, src jen.Code, e *resolver.ElementSpec, depth int) []jen.Code {
	if expr, ok := r.leafExpr(src, e); ok {
		return []jen.Code{jen.Add(dst).Op("=").Add(expr)}
	}

	c := jen.Id("c" + strconv.Itoa(depth))
	notNil := jen.Add(src).Op("!=").Nil()

	switch e.Leaf.Strategy {
	case resolver.StrategyRegistered:
		return []jen.Code{
			jen.If(notNil).Block(jen.Add(dst).Op("=").Add(src).Dot("DeepCopy").Call()),
		}
	case resolver.StrategySelfCloning:
		switch {
		case e.Type.Nullable && e.Leaf.ClonePointer:
			return []jen.Code{
				jen.If(notNil).Block(jen.Add(dst).Op("=").Add(src).Dot("Clone").Call()),
			}
		case e.Type.Nullable:
			return []jen.Code{
				jen.If(notNil).Block(
					jen.Add(c).Op(":=").Add(src).Dot("Clone").Call(),
					jen.Add(dst).Op("=").Op("&").Add(c),
				),
			}
		default:
			return []jen.Code{
				jen.If(
					jen.Add(c).Op(":=").Add(src).Dot("Clone").Call(),
					jen.Add(c).Op("!=").Nil(),
				).Block(jen.Add(dst).Op("=").Op("*").Add(c)),
			}
		}
	}
	return []jen.Code{jen.Add(dst).Op("=").Add(src)}
}

// elementInto copies src and hands the copy to store. A temporary named
// after depth holds the copy when it cannot be written as one expression.
func (r *renderer) elementInto(
	e *resolver.ElementSpec,
	src jen.Code,
	depth int,
	store func(val jen.Code) jen.Code,
) []jen.Code {
	if !e.IsContainer() {
		if expr, ok := r.leafExpr(src, e); ok {
			return []jen.Code{store(expr)}
		}
	}
	tmp := jen.Id("e" + strconv.Itoa(depth))
	stmts := []jen.Code{jen.Var().Add(tmp).Add(r.typeCode(e.Type.Type))}
	stmts = append(stmts, r.copyStmts(tmp, src, e, depth+1)...)
	return append(stmts, store(tmp))
}
