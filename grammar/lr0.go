package grammar

import (
	"github.com/mnhkahn/lrgen/grammar/symbol"
	"github.com/mnhkahn/lrgen/internal/diag"
)

// buildLR0 computes closures, goto'd successor kernels, and interns them,
// starting from the seeded start kernel (spec.md §4.4). It is grounded on
// vartan/grammar/lr0.go's genLR0Automaton/genStateAndNeighbourKernels,
// adapted from pointer/sha256-identified items to the integer item codec.
//
// The worklist is simply "every kernel id not yet processed": since the
// interner assigns ids densely in insertion order and intern() appends new
// kernels to the same slice this loop walks, iterating ids from 0 up while
// re-reading interner.len() each time a kernel is fully processed is
// exactly the FIFO worklist spec.md §4.4 calls canonical, with no separate
// queue to maintain.
func (g *Grammar) buildLR0() error {
	cc := g.componentCount()

	startID := g.interner.intern([]int{g.codec.encode(0, 0)}, cc)
	if startID != 0 {
		panic("buildLR0: start kernel did not get id 0")
	}

	for id := 0; id < g.interner.len(); id++ {
		k := g.interner.get(id)
		pairs := make([][]int, cc)

		// Step 2: contribute kernel items.
		for _, code := range k.items {
			p, dot := g.codec.decode(code)
			prod, _ := g.prods.byIndex(p)
			x := prod.At(dot)
			if x.IsNil() {
				continue
			}
			c := g.ComponentIndex(x)
			pairs[c] = append(pairs[c], g.codec.encode(p, dot+1))
		}

		// Step 3: contribute closure items via the generates relation.
		for _, code := range k.items {
			p, dot := g.codec.decode(code)
			prod, _ := g.prods.byIndex(p)
			x := prod.At(dot)
			if !x.IsNonTerminal() {
				continue
			}
			for _, mIdx := range g.generates.reachableFrom(x) {
				m := symbol.NewNonTerminal(mIdx)
				for _, q := range g.prods.productionsOf(m) {
					y := q.At(0)
					if y.IsNil() {
						// An empty production contributes no goto pair:
						// its sole item (q,0) is already its own reducing
						// item. Record it so the follow phase has
						// somewhere to attach a look-ahead set
						// (SPEC_FULL.md §4.7, kernel.go's emptyProdItems).
						code := g.codec.encode(q.Index(), 0)
						if !containsInt(k.emptyProdItems, code) {
							k.emptyProdItems = append(k.emptyProdItems, code)
						}
						continue
					}
					c := g.ComponentIndex(y)
					pairs[c] = append(pairs[c], g.codec.encode(q.Index(), 1))
				}
			}
		}

		// Step 4 & 5: canonicalise, intern, and record the goto vector.
		// New kernels interned here extend g.interner.len(), so the
		// enclosing for-loop will visit them in their turn.
		for c := 0; c < cc; c++ {
			if len(pairs[c]) == 0 {
				continue
			}
			items := sortUniqueInts(pairs[c])
			k.goTo[c] = g.interner.intern(items, cc)
		}
	}
	diag.Log("lr0: interned %v kernels over %v components", g.interner.len(), cc)
	return nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
