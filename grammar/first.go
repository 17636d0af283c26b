package grammar

import "github.com/mnhkahn/lrgen/grammar/symbol"

// firstSets holds, for each nonterminal, the set of terminal indices that
// can appear as the first symbol of some derivation, plus whether the
// nonterminal is nullable (spec.md §4.5).
type firstSets struct {
	sets     []*termSet // indexed by nonterminal index
	nullable []bool
	termN    int
}

func (f *firstSets) of(nt symbol.Symbol) *termSet {
	return f.sets[nt.Index()]
}

// computeFirstSets runs the memoised depth-first traversal spec.md §4.5
// describes -- per query, a "tried" bitmap over productions avoids
// non-termination on left recursion -- extended with ε-chaining: spec.md
// §9's open question notes the source (and a literal reading of §4.5) stops
// at the leftmost symbol of a production and never resumes scanning past a
// nullable leading nonterminal, so `A -> B c` with B nullable loses FIRST(c).
// This implementation follows the design notes' instruction to add
// ε-chaining and document the deviation (see DESIGN.md): nullability is
// computed once up front, and firstOfSuffix continues past a nullable
// leading symbol instead of stopping after the first recursion.
func computeFirstSets(g *Grammar) *firstSets {
	f := &firstSets{
		sets:     make([]*termSet, g.nonTermCount),
		nullable: computeNullable(g),
		termN:    g.termCount,
	}
	for i := range f.sets {
		f.sets[i] = newTermSet(g.termCount)
	}

	for i := 0; i < g.nonTermCount; i++ {
		nt := symbol.NewNonTerminal(i)
		tried := make([]bool, g.prods.len())
		firstOfNonTerminal(g, f, nt, tried)
	}

	return f
}

func firstOfNonTerminal(g *Grammar, f *firstSets, nt symbol.Symbol, tried []bool) {
	acc := f.sets[nt.Index()]
	for _, prod := range g.prods.productionsOf(nt) {
		if tried[prod.Index()] {
			continue
		}
		tried[prod.Index()] = true
		firstOfSuffix(g, f, prod, 0, tried, acc)
	}
}

// firstOfSuffix merges FIRST(rhs(prod)[pos:]) into acc, recursing into
// nonterminals and, per the ε-chaining fix, continuing past any leading
// symbol that is itself nullable.
func firstOfSuffix(g *Grammar, f *firstSets, prod *Production, pos int, tried []bool, acc *termSet) {
	for pos < prod.RHSLen() {
		sym := prod.At(pos)
		if sym.IsTerminal() {
			acc.add(sym.Index())
			return
		}

		// sym is a nonterminal: pull in everything already known (or
		// being discovered) for it, recursing only through productions
		// this top-level query hasn't tried yet.
		acc.merge(f.sets[sym.Index()])
		firstOfNonTerminal(g, f, sym, tried)
		acc.merge(f.sets[sym.Index()])

		if !f.nullable[sym.Index()] {
			return
		}
		pos++
	}
}

// computeNullable finds every nonterminal that can derive the empty string,
// via a small fixed point: a nonterminal is nullable if it has an empty
// production, or a production whose every RHS symbol is nullable.
func computeNullable(g *Grammar) []bool {
	nullable := make([]bool, g.nonTermCount)
	for {
		changed := false
		for _, p := range g.prods.all {
			i := p.LHS().Index()
			if nullable[i] {
				continue
			}
			if p.IsEmpty() {
				nullable[i] = true
				changed = true
				continue
			}
			allNullable := true
			for _, s := range p.RHS() {
				if s.IsTerminal() || !nullable[s.Index()] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[i] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return nullable
}

// firstOfSequence computes FIRST of a symbol sequence (used by the LALR(1)
// closure in follow.go to look past the dot): the union of FIRST of each
// leading nullable nonterminal plus the first terminal or non-nullable
// nonterminal's FIRST, and whether the whole sequence is nullable.
func firstOfSequence(g *Grammar, f *firstSets, syms []symbol.Symbol) (*termSet, bool) {
	acc := newTermSet(f.termN)
	for _, s := range syms {
		if s.IsTerminal() {
			acc.add(s.Index())
			return acc, false
		}
		acc.merge(f.sets[s.Index()])
		if !f.nullable[s.Index()] {
			return acc, false
		}
	}
	return acc, true
}
