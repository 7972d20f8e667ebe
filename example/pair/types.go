// Package pair shows the code gen-deepcopy generates for a small record.
package pair

import "time"

//go:generate go run github.com/seitarof/gen-deepcopy/cmd/gen-deepcopy .

//deepcopy:enhance
type Pair struct {
	A     int
	B     RegisteredType
	Tags  []string
	Items []*RegisteredType
	Index map[string]RegisteredType
	Roles map[string]struct{}
	Grid  [3]int
	At    time.Time
	Hook  func() string
}

// RegisteredType copies itself. Records holding one call its DeepCopy.
//
//deepcopy:registered
type RegisteredType struct {
	Name   string
	Labels []string
}

// DeepCopy returns a copy of r that shares no labels with it.
func (r *RegisteredType) DeepCopy() *RegisteredType {
	if r == nil {
		return nil
	}
	out := &RegisteredType{Name: r.Name}
	if r.Labels != nil {
		out.Labels = append(make([]string, 0, len(r.Labels)), r.Labels...)
	}
	return out
}
