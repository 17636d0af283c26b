package grammar

import "github.com/mnhkahn/lrgen/grammar/symbol"

// generatesTable is the reflexive-transitive closure of "A generates B as
// its leftmost symbol" over nonterminals (spec.md §3, §4.2).
type generatesTable struct {
	n   int
	rel [][]bool // rel[i][j] == true iff nonterminal i generates nonterminal j
}

// buildGeneratesTable computes the generates relation with an iterative
// worklist over (generator, generated) pairs, not the source's recursive
// formulation (original_source/grammar.c: mark_generates), which risks a
// deep call stack on pathological grammars -- exactly the rewrite spec.md
// §9's design notes call for. Worst-case complexity is O(N^3), matching the
// O(N^3 + N*P) bound in spec.md §4.2.
func buildGeneratesTable(n int, prods *productionSet) *generatesTable {
	rel := make([][]bool, n)
	for i := range rel {
		rel[i] = make([]bool, n)
		rel[i][i] = true
	}

	type edge struct{ from, to int }
	var worklist []edge

	for _, p := range prods.all {
		if p.IsEmpty() {
			continue
		}
		lead := p.At(0)
		if lead.IsNonTerminal() {
			i, j := p.LHS().Index(), lead.Index()
			if !rel[i][j] {
				rel[i][j] = true
				worklist = append(worklist, edge{i, j})
			}
		}
	}

	for len(worklist) > 0 {
		e := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		// Anything that generates e.from also generates e.to.
		for k := 0; k < n; k++ {
			if rel[k][e.from] && !rel[k][e.to] {
				rel[k][e.to] = true
				worklist = append(worklist, edge{k, e.to})
			}
		}
		// e.from generates everything e.to generates.
		for m := 0; m < n; m++ {
			if rel[e.to][m] && !rel[e.from][m] {
				rel[e.from][m] = true
				worklist = append(worklist, edge{e.from, m})
			}
		}
	}

	return &generatesTable{n: n, rel: rel}
}

// generates reports whether nonterminal i generates nonterminal j.
func (g *generatesTable) generates(i, j symbol.Symbol) bool {
	return g.rel[i.Index()][j.Index()]
}

// reachableFrom returns every nonterminal (including nt itself) that nt
// generates, i.e. row nt of the closure matrix.
func (g *generatesTable) reachableFrom(nt symbol.Symbol) []int {
	var out []int
	row := g.rel[nt.Index()]
	for j, ok := range row {
		if ok {
			out = append(out, j)
		}
	}
	return out
}
