package generator

import (
	"errors"
	"strings"
)

// Sentinel errors for generation failures.
var (
	// ErrEmitFailed indicates that rendered source could not be formatted
	// or handed to the emitter.
	ErrEmitFailed = errors.New("gen-deepcopy: emit failed")
	// ErrNameCollision indicates a record whose members clash with the
	// generated declarations.
	ErrNameCollision = errors.New("gen-deepcopy: name collision")
)

// EmitError represents a failure to format or emit one generated file.
type EmitError struct {
	Type  string // record type name
	File  string // generated file base name
	Cause error
}

// Error implements the error interface.
func (e *EmitError) Error() string {
	var b strings.Builder
	b.WriteString("gen-deepcopy: emit ")
	b.WriteString(e.File)
	if e.Type != "" {
		b.WriteString(" for ")
		b.WriteString(e.Type)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *EmitError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrEmitFailed.
func (e *EmitError) Is(target error) bool {
	return target == ErrEmitFailed
}

// CollisionError reports a record field or method, or a package-level
// declaration, that clashes with a generated name.
type CollisionError struct {
	Type string
	Name string
}

func (e *CollisionError) Error() string {
	return "gen-deepcopy: " + e.Type + ": " + e.Name + " clashes with a generated declaration"
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrNameCollision
}
