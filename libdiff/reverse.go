package libdiff

// Reverse returns the diff turning to back into from.
func (ds Diffs) Reverse() Diffs {
	res := make(Diffs, len(ds))
	for i, d := range ds {
		switch d.Op {
		case Insert:
			d.Op = Delete
		case Delete:
			d.Op = Insert
		}
		res[i] = d
	}
	return res
}
