package generator

import (
	"go/token"
	"go/types"
	"sync"
	"testing"

	"github.com/seitarof/gen-deepcopy/internal/descriptor"
	"github.com/seitarof/gen-deepcopy/internal/parser"
	"github.com/seitarof/gen-deepcopy/internal/resolver"
)

const testPkgPath = "example.com/m/model"

var testPkg = types.NewPackage(testPkgPath, "model")

type passthroughFormatter struct{}

func (passthroughFormatter) Format(_ string, src []byte) ([]byte, error) { return src, nil }

type emitCall struct {
	pkgPath  string
	baseName string
	src      []byte
}

type mockEmitter struct {
	mu    sync.Mutex
	calls []emitCall
	err   error
}

func (m *mockEmitter) Emit(pkgPath, baseName string, src []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, emitCall{pkgPath: pkgPath, baseName: baseName, src: src})
	return m.err
}

func newStruct(name string, fields ...*types.Var) *types.Named {
	obj := types.NewTypeName(token.NoPos, testPkg, name, nil)
	return types.NewNamed(obj, types.NewStruct(fields, nil), nil)
}

func newNamed(name string, underlying types.Type) *types.Named {
	obj := types.NewTypeName(token.NoPos, testPkg, name, nil)
	return types.NewNamed(obj, underlying, nil)
}

func field(name string, t types.Type) parser.FieldInfo {
	return parser.FieldInfo{Name: name, Type: t, IsExported: token.IsExported(name)}
}

func record(name string, fields ...parser.FieldInfo) *parser.RecordInfo {
	return &parser.RecordInfo{
		Name:    name,
		PkgPath: testPkgPath,
		PkgName: "model",
		Dir:     "/tmp/model",
		Fields:  fields,
	}
}

// classify builds field specs the way the runner does.
func classify(t testing.TB, rec *parser.RecordInfo, kinds *resolver.KindRegistry, registered ...string) []resolver.FieldSpec {
	t.Helper()
	if kinds == nil {
		kinds = resolver.DefaultKindRegistry()
	}
	c := resolver.New(
		descriptor.NewResolver(nil),
		kinds,
		nil,
		resolver.DefaultRules(resolver.NameRegistry(registered), []string{"time.Time"})...,
	)
	specs := make([]resolver.FieldSpec, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		specs = append(specs, c.Classify(rec.DisplayName(), f.Name, f.Type))
	}
	return specs
}

func addMethod(named *types.Named, name string, pointerRecv bool, params []*types.Var, results ...types.Type) {
	var recvType types.Type = named
	if pointerRecv {
		recvType = types.NewPointer(named)
	}
	pkg := named.Obj().Pkg()
	recv := types.NewVar(token.NoPos, pkg, "x", recvType)
	res := make([]*types.Var, 0, len(results))
	for _, r := range results {
		res = append(res, types.NewVar(token.NoPos, pkg, "", r))
	}
	sig := types.NewSignatureType(recv, nil, nil, types.NewTuple(params...), types.NewTuple(res...), false)
	named.AddMethod(types.NewFunc(token.NoPos, pkg, name, sig))
}
