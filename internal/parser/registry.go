package parser

import (
	"sort"
	"sync"
)

// Marker is the deep-copy directive a type declaration carries.
type Marker int

const (
	MarkerNone Marker = iota
	// MarkerEnhance types get a generated DeepCopy.
	MarkerEnhance
	// MarkerRegistered types promise a DeepCopy of their own.
	MarkerRegistered
)

// Entry is one marked type.
type Entry struct {
	Record *RecordInfo
	Marker Marker
}

// Registry records every type carrying a deep-copy marker. It is safe for
// concurrent reads once discovery has finished.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Entry{}}
}

// IsRegistered reports whether pkgPath.name carries a marker.
func (r *Registry) IsRegistered(pkgPath, name string) bool {
	return r.Marker(pkgPath, name) != MarkerNone
}

// Marker returns the marker of pkgPath.name, or MarkerNone.
func (r *Registry) Marker(pkgPath, name string) Marker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[qualify(pkgPath, name)].Marker
}

// Entries returns every marked type ordered by qualified name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.byName))
	for _, e := range r.byName {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Record.QualifiedName() < out[j].Record.QualifiedName()
	})
	return out
}

func (r *Registry) add(info *RecordInfo, m Marker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[info.QualifiedName()] = Entry{Record: info, Marker: m}
}
