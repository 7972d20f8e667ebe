package generator

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/tools/imports"

	"github.com/seitarof/gen-deepcopy/internal/parser"
	"github.com/seitarof/gen-deepcopy/internal/resolver"
)

// Generator renders and emits the deep-copy entry points of one record.
type Generator interface {
	Render(rec *parser.RecordInfo, specs []resolver.FieldSpec) ([]byte, error)
	Generate(rec *parser.RecordInfo, specs []resolver.FieldSpec) error
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

type generatorImpl struct {
	formatter Formatter
	emitter   Emitter
}

type goimportsFormatter struct{}

// renderer renders code for a file in package pkgPath.
type renderer struct {
	pkgPath string
}

// New creates a code generator.
func New(f Formatter, e Emitter) Generator {
	return &generatorImpl{formatter: f, emitter: e}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

// FileName returns the generated file name for a base name.
func FileName(base string) string {
	return inflect.Underscore(base) + ".go"
}

// Render returns the formatted source of rec's generated file. specs must
// follow rec.Fields in order.
func (g *generatorImpl) Render(rec *parser.RecordInfo, specs []resolver.FieldSpec) ([]byte, error) {
	if rec.Err != nil {
		return nil, rec.Err
	}
	if len(specs) != len(rec.Fields) {
		return nil, fmt.Errorf("%s: %d field specs for %d fields", rec.DisplayName(), len(specs), len(rec.Fields))
	}
	if err := checkCollisions(rec); err != nil {
		return nil, err
	}

	r := &renderer{pkgPath: rec.PkgPath}
	f := jen.NewFilePathName(rec.PkgPath, rec.PkgName)
	f.HeaderComment(Header)
	f.ImportName(RoundtripPkg, "roundtrip")
	r.assemble(f, rec, specs)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", rec.DisplayName(), err)
	}

	filename := FileName(NamesFor(rec).Base)
	formatted, err := g.formatter.Format(filepath.Join(rec.Dir, filename), buf.Bytes())
	if err != nil {
		return nil, &EmitError{Type: rec.DisplayName(), File: filename, Cause: fmt.Errorf("format: %w", err)}
	}
	return formatted, nil
}

// Generate renders rec and hands the result to the emitter in one call, so
// a file is written only once its text is complete.
func (g *generatorImpl) Generate(rec *parser.RecordInfo, specs []resolver.FieldSpec) error {
	src, err := g.Render(rec, specs)
	if err != nil {
		return err
	}
	base := NamesFor(rec).Base
	if err := g.emitter.Emit(rec.PkgPath, base, src); err != nil {
		return &EmitError{Type: rec.DisplayName(), File: FileName(base), Cause: err}
	}
	return nil
}
