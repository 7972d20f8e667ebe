package parser

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/seitarof/gen-deepcopy/internal/config"
)

// Parser discovers marked record types in Go packages.
type Parser interface {
	Discover(patterns ...string) (*Discovery, error)
}

// Discovery is the result of one Discover call.
type Discovery struct {
	// Records are the types marked for synthesis, ordered by package path
	// and then by source position.
	Records []*RecordInfo
	// Registry knows every marked type, including those only marked as
	// registered and those found in referenced packages of the module.
	Registry *Registry
}

type parserImpl struct {
	markers config.Markers
	dir     string
}

// Option configures a parser.
type Option func(*parserImpl)

// WithMarkers overrides the comment directives.
func WithMarkers(m config.Markers) Option {
	return func(p *parserImpl) {
		if m.Enhance != "" {
			p.markers.Enhance = m.Enhance
		}
		if m.Registered != "" {
			p.markers.Registered = m.Registered
		}
	}
}

// WithDir sets the directory patterns are resolved against.
func WithDir(dir string) Option {
	return func(p *parserImpl) { p.dir = dir }
}

// New returns default parser.
func New(opts ...Option) Parser {
	p := &parserImpl{markers: config.DefaultMarkers()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *parserImpl) Discover(patterns ...string) (*Discovery, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pkgs, err := p.loadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	d := &Discovery{Registry: NewRegistry()}
	loaded := map[string]bool{}
	for _, pkg := range pkgs {
		loaded[pkg.PkgPath] = true
		d.Records = append(d.Records, p.scanPackage(pkg, d.Registry)...)
	}

	if err := p.scanReferenced(pkgs, loaded, d.Registry); err != nil {
		return nil, err
	}

	sort.SliceStable(d.Records, func(i, j int) bool {
		return d.Records[i].PkgPath < d.Records[j].PkgPath
	})
	return d, nil
}

func (p *parserImpl) loadPackages(patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedSyntax |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedModule,
		Dir: p.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages %q: %w", strings.Join(patterns, " "), err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("packages %q have compilation errors", strings.Join(patterns, " "))
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %q", strings.Join(patterns, " "))
	}
	return pkgs, nil
}

// scanPackage records every marked type of pkg in the registry and returns
// the ones marked for synthesis, in source order.
func (p *parserImpl) scanPackage(pkg *packages.Package, reg *Registry) []*RecordInfo {
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return nil
	}
	var records []*RecordInfo
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				m := p.markerOf(doc)
				if m == MarkerNone {
					continue
				}
				obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}
				info := buildRecord(pkg, obj)
				// A registered type only has to declare DeepCopy, so any
				// shape is recorded. Broken enhance targets get no DeepCopy.
				if m == MarkerRegistered || info.Err == nil {
					reg.add(info, m)
				}
				if m == MarkerEnhance {
					records = append(records, info)
				}
			}
		}
	}
	return records
}

// scanReferenced loads packages of the root module that record fields refer
// to but that were not matched by the patterns, and registers their marked
// types.
func (p *parserImpl) scanReferenced(pkgs []*packages.Package, loaded map[string]bool, reg *Registry) error {
	rootModulePath := ""
	if pkgs[0].Module != nil {
		rootModulePath = pkgs[0].Module.Path
	}

	refs := map[string]struct{}{}
	seen := map[*types.Named]bool{}
	for _, e := range reg.Entries() {
		for _, f := range e.Record.Fields {
			referencedPackages(f.Type, refs, seen)
		}
	}

	var extra []string
	for ref := range refs {
		if loaded[ref] {
			continue
		}
		for _, pkg := range pkgs {
			if shouldRecurseNestedPackage(ref, pkg.PkgPath, rootModulePath) {
				extra = append(extra, ref)
				break
			}
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)

	more, err := p.loadPackages(extra...)
	if err != nil {
		return err
	}
	for _, pkg := range more {
		p.scanPackage(pkg, reg)
	}
	return nil
}

func (p *parserImpl) markerOf(doc *ast.CommentGroup) Marker {
	if doc == nil {
		return MarkerNone
	}
	found := MarkerNone
	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		switch text {
		case p.markers.Enhance:
			return MarkerEnhance
		case p.markers.Registered:
			found = MarkerRegistered
		}
	}
	return found
}

func buildRecord(pkg *packages.Package, obj *types.TypeName) *RecordInfo {
	info := &RecordInfo{
		Name:    obj.Name(),
		PkgPath: pkg.Types.Path(),
		PkgName: pkg.Name,
		Pos:     pkg.Fset.Position(obj.Pos()).String(),
		Scope:   pkg.Types.Scope(),
		Fset:    pkg.Fset,
	}
	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	named, ok := obj.Type().(*types.Named)
	if !ok || obj.IsAlias() {
		info.Err = &MissingConstructorError{Type: info.DisplayName(), Kind: "an alias"}
		return info
	}
	info.Named = named
	st, ok := extractStructType(named)
	if !ok {
		info.Err = &MissingConstructorError{Type: info.DisplayName(), Kind: shapeName(named)}
		return info
	}

	info.TypeParams = named.TypeParams()
	info.Fields = collectFields(st)
	return info
}

func shouldRecurseNestedPackage(nestedPkgPath, currentPkgPath, rootModulePath string) bool {
	if nestedPkgPath == "" {
		return false
	}
	if nestedPkgPath == currentPkgPath {
		return true
	}
	if rootModulePath == "" {
		return false
	}
	return nestedPkgPath == rootModulePath || strings.HasPrefix(nestedPkgPath, rootModulePath+"/")
}
