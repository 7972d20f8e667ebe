package generator

import (
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/seitarof/gen-deepcopy/internal/resolver"
)

// containerStmts rebuilds the container src into dst. Every kind but the
// growable list fills a staging collection and converts it to the declared
// type at the end; a growable list is filled in place.
func (r *renderer) containerStmts(dst, src jen.Code, e *resolver.ElementSpec, depth int) []jen.Code {
	suffix := strconv.Itoa(depth)
	stage := jen.Id("stage" + suffix)
	v := jen.Id("v" + suffix)
	declared := e.Type.Type

	var body []jen.Code
	switch {
	case e.Kind == resolver.KindArray || e.Kind.IsList():
		stageType := jen.Index().Add(r.typeCode(e.Element.Type.Type))
		if e.Kind == resolver.KindGrowableList {
			stageType = jen.Add(r.typeCode(declared))
		}
		body = append(body,
			jen.Add(stage).Op(":=").Make(stageType, jen.Lit(0), jen.Len(src)),
			jen.For(jen.List(jen.Id("_"), v).Op(":=").Range().Add(src)).Block(
				r.elementInto(e.Element, v, depth, func(val jen.Code) jen.Code {
					return jen.Add(stage).Op("=").Append(stage, val)
				})...,
			),
		)
		switch e.Kind {
		case resolver.KindArray:
			body = append(body, jen.Copy(jen.Add(dst).Index(jen.Empty(), jen.Empty()), stage))
		case resolver.KindFixedList:
			body = append(body, jen.Add(dst).Op("=").Add(r.typeCode(declared)).Call(
				jen.Qual("slices", "Clip").Call(stage),
			))
		default:
			body = append(body, jen.Add(dst).Op("=").Add(stage))
		}

	case e.Kind.IsSet():
		stageType := jen.Map(r.typeCode(e.Element.Type.Type)).Struct()
		body = append(body,
			jen.Add(stage).Op(":=").Make(stageType, jen.Len(src)),
			jen.For(jen.Add(v).Op(":=").Range().Add(src)).Block(
				r.elementInto(e.Element, v, depth, func(val jen.Code) jen.Code {
					return jen.Add(stage).Index(val).Op("=").Struct().Values()
				})...,
			),
			r.convert(dst, stage, e),
		)

	case e.Kind.IsMap():
		k := jen.Id("k" + suffix)
		stageType := jen.Map(r.typeCode(e.Type.Key().Type)).Add(r.typeCode(e.Element.Type.Type))
		body = append(body,
			jen.Add(stage).Op(":=").Make(stageType, jen.Len(src)),
			jen.For(jen.List(k, v).Op(":=").Range().Add(src)).Block(
				r.elementInto(e.Element, v, depth, func(val jen.Code) jen.Code {
					return jen.Add(stage).Index(k).Op("=").Add(val)
				})...,
			),
			r.convert(dst, stage, e),
		)

	default:
		return []jen.Code{jen.Add(dst).Op("=").Add(src)}
	}

	if e.Type.Nullable {
		return []jen.Code{jen.If(jen.Add(src).Op("!=").Nil()).Block(body...)}
	}
	return []jen.Code{jen.Block(body...)}
}

// convert assigns the staging map to dst, converting it to a defined type.
func (r *renderer) convert(dst, stage jen.Code, e *resolver.ElementSpec) jen.Code {
	if !e.Type.Named {
		return jen.Add(dst).Op("=").Add(stage)
	}
	return jen.Add(dst).Op("=").Add(r.typeCode(e.Type.Type)).Call(stage)
}
