package deepcopyinvalid

//deepcopy:enhance
type Level int

//deepcopy:enhance
type Ok struct {
	N int
}
