package resolver

import (
	"go/types"

	"github.com/seitarof/gen-deepcopy/internal/descriptor"
	"github.com/seitarof/gen-deepcopy/internal/diagnostic"
)

// Classifier assigns container kinds and copy strategies to fields.
type Classifier interface {
	Classify(owner, field string, t types.Type) FieldSpec
}

// Rule tries to assign a leaf copy strategy to a descriptor.
type Rule interface {
	Name() string
	Try(d *descriptor.Descriptor) (LeafSpec, bool)
}

type classifierImpl struct {
	descriptors *descriptor.Resolver
	kinds       *KindRegistry
	rules       []Rule
	sink        diagnostic.Sink
}

// New builds a classifier. The descriptor resolver is shared by every field
// classified with the returned value, so one classifier serves one run.
func New(
	descriptors *descriptor.Resolver,
	kinds *KindRegistry,
	sink diagnostic.Sink,
	rules ...Rule,
) Classifier {
	if kinds == nil {
		kinds = DefaultKindRegistry()
	}
	if sink == nil {
		sink = diagnostic.Discard()
	}
	return &classifierImpl{
		descriptors: descriptors,
		kinds:       kinds,
		rules:       rules,
		sink:        sink,
	}
}

func (c *classifierImpl) Classify(owner, field string, t types.Type) FieldSpec {
	d := c.descriptors.ResolveField(owner, field, t)
	return FieldSpec{
		Name:        field,
		ElementSpec: *c.classify(owner, field, d),
	}
}

func (c *classifierImpl) classify(owner, field string, d *descriptor.Descriptor) *ElementSpec {
	spec := &ElementSpec{Type: d, Kind: c.kinds.Kind(d)}
	if spec.Kind == KindNone {
		spec.Leaf = c.resolveOne(owner, field, d)
		return spec
	}

	elem := d.Elem()
	if spec.Kind.IsSet() {
		elem = d.Key()
	}
	spec.Element = c.classify(owner, field, elem)
	return spec
}

func (c *classifierImpl) resolveOne(owner, field string, d *descriptor.Descriptor) LeafSpec {
	for _, rule := range c.rules {
		if leaf, ok := rule.Try(d); ok {
			leaf.Rule = rule.Name()
			return leaf
		}
	}
	if d.Shape == descriptor.Struct || d.BaseName == descriptor.Pointer {
		diagnostic.Infof(c.sink, diagnostic.CodePassthroughField, owner, field,
			"%s has no copy strategy, value is shared with the source", d)
	}
	return LeafSpec{Strategy: StrategyPassthrough, Rule: "passthrough"}
}
