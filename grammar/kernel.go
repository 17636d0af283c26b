package grammar

import (
	"sort"
	"strconv"
	"strings"
)

// noneKernel is the goto-table sentinel meaning "no successor kernel".
const noneKernel = -1

// kernel is a canonical, non-closure set of encoded items (spec.md §3). Two
// kernels are equal iff their sorted items arrays are element-wise equal;
// the interner (below) is the sole authority on that equality and on kernel
// identity.
type kernel struct {
	id    int
	items []int // sorted, deduplicated, encoded items

	goTo []int // length N+T, indexed by component index; noneKernel or a kernel id

	// emptyProdItems holds items (q, 0) for empty productions q that are
	// reducible closure members of this kernel but are never themselves
	// kernel items (dot is 0 and the production is not production 0, so
	// they never enter a kernel's items). They still need a
	// look-ahead entry once the follow phase runs (SPEC_FULL.md §4.7),
	// mirroring vartan/grammar/lr0.go's lrState.emptyProdItems.
	emptyProdItems []int

	// follows holds one terminal bitset per entry of items, in the same
	// order, populated by the follow phase (SPEC_FULL.md §4.7). It is
	// left nil until that phase runs.
	follows []*termSet

	// emptyProdFollows parallels emptyProdItems.
	emptyProdFollows []*termSet
}

// kernelItemKey returns the canonical byte-literal identity of a sorted,
// deduplicated item array. Because spec.md's invariant is exact, byte-equal
// sorted arrays -- not "extremely likely to be distinct" -- this keys the
// interner directly off of an exact encoding of the array (each item's
// decimal text followed by a NUL byte) rather than through a
// fixed-width cryptographic digest (a deviation from vartan/grammar/item.go's
// sha256-keyed kernel; see DESIGN.md). It is grounded instead on
// original_source/grammar.c's kernel_matches, which does the equivalent
// memcmp of the raw pairs array.
func kernelItemKey(items []int) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(strconv.Itoa(it))
		b.WriteByte('\x00')
	}
	return b.String()
}

// kernelInterner deduplicates kernels by structural equality and assigns
// dense ids in insertion order (spec.md §4.3). It is the sole owner of all
// kernel storage; external code only ever holds a kernel's id.
type kernelInterner struct {
	byKey   map[string]int
	kernels []*kernel
}

func newKernelInterner() *kernelInterner {
	return &kernelInterner{
		byKey: map[string]int{},
	}
}

// intern returns the id of the kernel whose items equal the given,
// already-sorted-and-deduplicated array, creating one if none exists. An
// empty items array interns to noneKernel. The caller must not mutate items
// after a successful call: ownership of the backing array passes to the
// interner (spec.md §4.3, §5).
func (in *kernelInterner) intern(items []int, componentCount int) int {
	if len(items) == 0 {
		return noneKernel
	}

	key := kernelItemKey(items)
	if id, ok := in.byKey[key]; ok {
		return id
	}

	id := len(in.kernels)
	k := &kernel{
		id:    id,
		items: items,
		goTo:  make([]int, componentCount),
	}
	for i := range k.goTo {
		k.goTo[i] = noneKernel
	}
	in.byKey[key] = id
	in.kernels = append(in.kernels, k)
	return id
}

func (in *kernelInterner) get(id int) *kernel {
	return in.kernels[id]
}

func (in *kernelInterner) len() int {
	return len(in.kernels)
}

// sortUniqueInts sorts s ascending and removes duplicates in place,
// returning the (possibly shorter) result. This is the canonicalisation
// step spec.md §4.4 step 4 requires before every intern call.
func sortUniqueInts(s []int) []int {
	if len(s) < 2 {
		return s
	}
	sort.Ints(s)
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
