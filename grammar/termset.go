package grammar

// termSet is a dense bitset over terminal indices, used for both FIRST sets
// (spec.md §4.5) and LALR(1) look-ahead sets (SPEC_FULL.md §4.7).
type termSet struct {
	bits []bool
}

func newTermSet(size int) *termSet {
	return &termSet{bits: make([]bool, size)}
}

// add reports whether t changed.
func (t *termSet) add(i int) bool {
	if t.bits[i] {
		return false
	}
	t.bits[i] = true
	return true
}

func (t *termSet) has(i int) bool {
	return t.bits[i]
}

// merge adds every member of other to t, reporting whether t changed.
func (t *termSet) merge(other *termSet) bool {
	if other == nil {
		return false
	}
	changed := false
	for i, v := range other.bits {
		if v && t.add(i) {
			changed = true
		}
	}
	return changed
}

// slice returns the set's members in ascending order.
func (t *termSet) slice() []int {
	out := make([]int, 0, len(t.bits))
	for i, v := range t.bits {
		if v {
			out = append(out, i)
		}
	}
	return out
}

func (t *termSet) clone() *termSet {
	c := newTermSet(len(t.bits))
	copy(c.bits, t.bits)
	return c
}
