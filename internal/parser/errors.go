package parser

import (
	"errors"
	"fmt"
)

// ErrMissingConstructor is matched by every MissingConstructorError.
var ErrMissingConstructor = errors.New("missing constructor")

// MissingConstructorError reports a marked declaration that is not a struct
// and therefore has no field list to rebuild it from.
type MissingConstructorError struct {
	Type string
	Kind string
}

func (e *MissingConstructorError) Error() string {
	return fmt.Sprintf("%s: marked for deep copy but is %s, not a struct", e.Type, e.Kind)
}

func (e *MissingConstructorError) Is(target error) bool {
	return target == ErrMissingConstructor
}
