package shared

//deepcopy:registered
type Tag struct {
	Name string
}

func (t *Tag) DeepCopy() *Tag {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

type Untagged struct {
	Name string
}
