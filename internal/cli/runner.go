package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/seitarof/gen-deepcopy/internal/config"
	"github.com/seitarof/gen-deepcopy/internal/descriptor"
	"github.com/seitarof/gen-deepcopy/internal/diagnostic"
	"github.com/seitarof/gen-deepcopy/internal/generator"
	"github.com/seitarof/gen-deepcopy/internal/parser"
	"github.com/seitarof/gen-deepcopy/internal/resolver"
)

// Runner orchestrates discovery, classification and generation.
type Runner interface {
	Run(ctx context.Context, cfg *Config) error
}

// DirRecorder learns where each package's sources live. The file emitter
// implements it.
type DirRecorder interface {
	SetDir(pkgPath, dir string)
}

type runnerImpl struct {
	parser    parser.Parser
	generator generator.Generator
	settings  *config.Config
	sink      diagnostic.Sink
	dirs      DirRecorder
}

// NewRunner creates a default runner implementation. dirs may be nil.
func NewRunner(
	p parser.Parser,
	g generator.Generator,
	settings *config.Config,
	sink diagnostic.Sink,
	dirs DirRecorder,
) Runner {
	if settings == nil {
		settings = config.New()
	}
	if sink == nil {
		sink = diagnostic.Discard()
	}
	return &runnerImpl{
		parser:    p,
		generator: g,
		settings:  settings,
		sink:      sink,
		dirs:      dirs,
	}
}

// Run executes a single generation cycle. Types are generated in parallel;
// a failing type does not stop the others and every failure is returned.
func (r *runnerImpl) Run(ctx context.Context, cfg *Config) error {
	d, err := r.parser.Discover(cfg.Patterns...)
	if err != nil {
		return fmt.Errorf("discover: %w", err)
	}
	if len(d.Records) == 0 {
		diagnostic.Infof(r.sink, diagnostic.CodeTypeProcessed, "", "", "no marked types found")
		return nil
	}

	kinds, err := resolver.NewKindRegistry(r.settings.Kinds)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	registry := r.registry(d.Registry)

	if r.dirs != nil {
		for _, rec := range d.Records {
			r.dirs.SetDir(rec.PkgPath, rec.Dir)
		}
	}

	workers := r.settings.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	errs := make([]error, len(d.Records))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, rec := range d.Records {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			errs[i] = r.processRecord(rec, kinds, registry)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		errs = append([]error{err}, errs...)
	}
	return errors.Join(errs...)
}

// registry returns the types whose DeepCopy exists or is generated in this
// run. A type marked registered without a DeepCopy method is reported and
// left to the remaining copy rules, since calling it would not compile.
func (r *runnerImpl) registry(marked *parser.Registry) resolver.Registry {
	unbacked := map[string]bool{}
	for _, e := range marked.Entries() {
		rec := e.Record
		if e.Marker != parser.MarkerRegistered || (rec.Named != nil && resolver.HasDeepCopyMethod(rec.Named)) {
			continue
		}
		unbacked[rec.QualifiedName()] = true
		diagnostic.Warnf(r.sink, diagnostic.CodeRegistryMismatch, rec.DisplayName(), "",
			"marked %s but declares no DeepCopy() *%s method, fields of this type use the other copy rules",
			r.settings.Markers.Registered, rec.Name)
	}

	verified := resolver.RegistryFunc(func(pkgPath, name string) bool {
		return marked.IsRegistered(pkgPath, name) && !unbacked[pkgPath+"."+name]
	})
	return resolver.Registries(verified, resolver.NameRegistry(r.settings.Registered))
}

// processRecord classifies every field of rec with a fresh descriptor
// resolver and generates its file.
func (r *runnerImpl) processRecord(rec *parser.RecordInfo, kinds *resolver.KindRegistry, registry resolver.Registry) error {
	name := rec.DisplayName()
	if rec.Err != nil {
		diagnostic.Errorf(r.sink, diagnostic.CodeMissingConstructor, name, "", "%v", rec.Err)
		return rec.Err
	}

	classifier := resolver.New(
		descriptor.NewResolver(r.sink),
		kinds,
		r.sink,
		resolver.DefaultRules(registry, r.settings.Immutable)...,
	)
	specs := make([]resolver.FieldSpec, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		specs = append(specs, classifier.Classify(name, f.Name, f.Type))
	}

	if err := r.generator.Generate(rec, specs); err != nil {
		return fmt.Errorf("generate %s: %w", name, err)
	}
	diagnostic.Infof(r.sink, diagnostic.CodeFileEmitted, name, "",
		"emitted %s", generator.FileName(generator.NamesFor(rec).Base))
	diagnostic.Infof(r.sink, diagnostic.CodeTypeProcessed, name, "", "%d fields", len(specs))
	return nil
}
