package generator

import (
	"go/types"
	"strconv"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/seitarof/gen-deepcopy/internal/parser"
	"github.com/seitarof/gen-deepcopy/internal/resolver"
)

// Header is the first line of every generated file.
const Header = "Code generated by gen-deepcopy. DO NOT EDIT."

// Generated method names.
const (
	methodStage        = "Stage"
	methodDeepCopy     = "DeepCopy"
	methodDeepCopyWith = "DeepCopyWith"
)

// Names are the identifiers generated for one record type.
type Names struct {
	Record string
	Stage  string
	Option string
	// With maps field names to their option constructors.
	With map[string]string
	// Base is the emitted file base name.
	Base string
}

// NamesFor derives the generated identifiers for rec. Option constructors
// are <Record>With<Field>; when two fields title-case to the same name the
// later one gets a numeric suffix.
func NamesFor(rec *parser.RecordInfo) Names {
	n := Names{
		Record: rec.Name,
		Stage:  rec.Name + "Stage",
		Option: rec.Name + "Option",
		With:   make(map[string]string, len(rec.Fields)),
		Base:   rec.Name + "Enhance",
	}
	used := map[string]int{}
	for _, f := range rec.Fields {
		name := rec.Name + "With" + inflect.Capitalize(f.Name)
		used[name]++
		if c := used[name]; c > 1 {
			name += strconv.Itoa(c)
		}
		n.With[f.Name] = name
	}
	return n
}

// checkCollisions rejects records with a field or method named like a
// generated method, and packages already declaring a generated name outside
// the generated file itself.
func checkCollisions(rec *parser.RecordInfo) error {
	n := NamesFor(rec)
	file := FileName(n.Base)

	for _, name := range []string{methodStage, methodDeepCopy, methodDeepCopyWith} {
		for _, f := range rec.Fields {
			if f.Name == name {
				return &CollisionError{Type: rec.DisplayName(), Name: "field " + name}
			}
		}
		if pos, ok := rec.MethodDecl(name, file); ok {
			return &CollisionError{Type: rec.DisplayName(), Name: "method " + name + " at " + pos}
		}
	}

	decls := []string{n.Stage, n.Option}
	for _, f := range rec.Fields {
		decls = append(decls, n.With[f.Name])
	}
	for _, name := range decls {
		if pos, ok := rec.PackageDecl(name, file); ok {
			return &CollisionError{Type: rec.DisplayName(), Name: name + " at " + pos}
		}
	}
	return nil
}

// assemble adds the staging struct, the option type and constructors, and
// the Stage, DeepCopy and DeepCopyWith methods for rec to f.
func (r *renderer) assemble(f *jen.File, rec *parser.RecordInfo, specs []resolver.FieldSpec) {
	n := NamesFor(rec)
	declParams, useParams := r.typeParams(rec.TypeParams)

	recordType := func() *jen.Statement { return withTypes(jen.Id(n.Record), useParams) }
	stageType := func() *jen.Statement { return withTypes(jen.Id(n.Stage), useParams) }
	optionType := func() *jen.Statement { return withTypes(jen.Id(n.Option), useParams) }
	receiver := jen.Id("x").Op("*").Add(recordType())

	// Staging struct.
	fields := make([]jen.Code, 0, len(rec.Fields))
	for _, fi := range rec.Fields {
		fields = append(fields, jen.Id(fi.Name).Add(r.typeCode(fi.Type)))
	}
	f.Commentf("%s holds the field values a %s copy is built from.", n.Stage, n.Record)
	withTypes(f.Type().Id(n.Stage), declParams).Struct(fields...)
	f.Line()

	// Options.
	f.Commentf("%s overrides one field of a %s copy.", n.Option, n.Record)
	withTypes(f.Type().Id(n.Option), declParams).Func().Params(jen.Op("*").Add(stageType()))
	f.Line()
	for _, fi := range rec.Fields {
		with := n.With[fi.Name]
		f.Commentf("%s sets %s on the copy. The value is deep-copied like the current one would be.", with, fi.Name)
		withTypes(f.Func().Id(with), declParams).Params(jen.Id("v").Add(r.typeCode(fi.Type))).Add(optionType()).Block(
			jen.Return(jen.Func().Params(jen.Id("s").Op("*").Add(stageType())).Block(
				jen.Id("s").Dot(fi.Name).Op("=").Id("v"),
			)),
		)
		f.Line()
	}

	// Stage.
	values := jen.Dict{}
	for _, fi := range rec.Fields {
		values[jen.Id(fi.Name)] = jen.Id("x").Dot(fi.Name)
	}
	f.Comment(methodStage + " returns the current field values without copying them.")
	f.Func().Params(receiver).Id(methodStage).Params().Op("*").Add(stageType()).Block(
		jen.If(jen.Id("x").Op("==").Nil()).Block(jen.Return(jen.Nil())),
		jen.Return(jen.Op("&").Add(stageType()).Values(values)),
	)
	f.Line()

	// DeepCopy.
	body := []jen.Code{
		jen.If(jen.Id("x").Op("==").Nil()).Block(jen.Return(jen.Nil())),
		jen.Id("s").Op(":=").Id("x").Dot(methodStage).Call(),
		jen.For(jen.List(jen.Id("_"), jen.Id("opt")).Op(":=").Range().Id("opts")).Block(
			jen.Id("opt").Call(jen.Id("s")),
		),
		jen.Id("out").Op(":=").New(recordType()),
	}
	for i := range specs {
		spec := &specs[i]
		dst := jen.Id("out").Dot(spec.Name)
		src := jen.Id("s").Dot(spec.Name)
		body = append(body, r.copyStmts(dst, src, &spec.ElementSpec, 0)...)
	}
	body = append(body, jen.Return(jen.Id("out")))

	f.Commentf("%s returns a deep copy of x. Each option replaces one field before", methodDeepCopy)
	f.Comment("copying; fields without an option are copied from x.")
	f.Func().Params(receiver).Id(methodDeepCopy).Params(
		jen.Id("opts").Op("...").Add(optionType()),
	).Op("*").Add(recordType()).Block(body...)
	f.Line()

	// DeepCopyWith.
	overrides := make([]jen.Code, 0, len(rec.Fields))
	for _, fi := range rec.Fields {
		overrides = append(overrides, withTypes(jen.Id(n.With[fi.Name]), useParams).Call(jen.Id("s").Dot(fi.Name)))
	}
	f.Commentf("%s stages the current values of x, lets mutate change them and", methodDeepCopyWith)
	f.Commentf("returns %s of the staged values.", methodDeepCopy)
	f.Func().Params(receiver).Id(methodDeepCopyWith).Params(
		jen.Id("mutate").Func().Params(jen.Op("*").Add(stageType())),
	).Op("*").Add(recordType()).Block(
		jen.If(jen.Id("x").Op("==").Nil()).Block(jen.Return(jen.Nil())),
		jen.Id("s").Op(":=").Id("x").Dot(methodStage).Call(),
		jen.If(jen.Id("mutate").Op("!=").Nil()).Block(jen.Id("mutate").Call(jen.Id("s"))),
		jen.Return(jen.Id("x").Dot(methodDeepCopy).Call(overrides...)),
	)
}

// typeParams returns the declaration list (T any) and the use list (T).
func (r *renderer) typeParams(list *types.TypeParamList) (decl, use []jen.Code) {
	for i := 0; i < list.Len(); i++ {
		tp := list.At(i)
		decl = append(decl, jen.Id(tp.Obj().Name()).Add(r.typeCode(tp.Constraint())))
		use = append(use, jen.Id(tp.Obj().Name()))
	}
	return decl, use
}

// withTypes appends a type parameter or argument list when there is one.
func withTypes(s *jen.Statement, params []jen.Code) *jen.Statement {
	if len(params) == 0 {
		return s
	}
	return s.Types(params...)
}
