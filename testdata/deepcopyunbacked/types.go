package deepcopyunbacked

// Orphan is marked registered but never got a DeepCopy.
//
//deepcopy:registered
type Orphan struct {
	Z []int
}

//deepcopy:registered
type Money int64

func (m *Money) DeepCopy() *Money {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

//deepcopy:enhance
type Holder struct {
	O     Orphan
	M     Money
	Owned *Orphan
}
