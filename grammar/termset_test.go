package grammar

import "testing"

func TestTermSetAddAndHas(t *testing.T) {
	ts := newTermSet(4)
	if ts.has(2) {
		t.Error("fresh term set must not have any members")
	}
	if !ts.add(2) {
		t.Error("add on a new member must report true")
	}
	if ts.add(2) {
		t.Error("add on an existing member must report false")
	}
	if !ts.has(2) {
		t.Error("has(2) must be true after add(2)")
	}
}

func TestTermSetMerge(t *testing.T) {
	a := newTermSet(4)
	a.add(0)
	b := newTermSet(4)
	b.add(0)
	b.add(3)

	if !a.merge(b) {
		t.Error("merge must report true when new members are added")
	}
	if a.merge(b) {
		t.Error("merging the same set again must report no change")
	}
	if !a.has(3) {
		t.Error("a must have member 3 after merging b")
	}
}

func TestTermSetSliceIsAscending(t *testing.T) {
	ts := newTermSet(10)
	ts.add(7)
	ts.add(1)
	ts.add(4)
	got := ts.slice()
	want := []int{1, 4, 7}
	if len(got) != len(want) {
		t.Fatalf("slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slice()[%v] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTermSetClone(t *testing.T) {
	a := newTermSet(4)
	a.add(1)
	c := a.clone()
	c.add(2)
	if a.has(2) {
		t.Error("mutating a clone must not affect the original")
	}
}
