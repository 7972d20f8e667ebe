package deepcopybasic

import (
	"time"

	"github.com/seitarof/gen-deepcopy/testdata/deepcopybasic/shared"
)

type Meta struct {
	Version int
}

//deepcopy:enhance
type Pair struct {
	Meta
	A     int
	B     Registered
	Items []*Registered
	Index map[string][]Registered
	Tag   shared.Tag
	At    time.Time
	note  string
	_     int
}

//deepcopy:registered
type Registered struct {
	X string
}

func (r *Registered) DeepCopy() *Registered {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

// Plain carries no marker.
type Plain struct {
	Y int
}

type (
	//deepcopy:enhance
	Box[T any] struct {
		Value  T
		Values []T
	}

	Loose struct{}
)
