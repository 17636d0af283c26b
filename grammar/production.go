package grammar

import (
	"fmt"

	"github.com/mnhkahn/lrgen/grammar/symbol"
)

// Production is an ordered right-hand side bound to a left-hand-side
// nonterminal, with a stable index assigned by insertion order (spec.md §3).
// Productions are immutable after a Grammar is built.
type Production struct {
	index int
	lhs   symbol.Symbol
	rhs   []symbol.Symbol
}

func newProduction(index int, lhs symbol.Symbol, rhs []symbol.Symbol) *Production {
	return &Production{index: index, lhs: lhs, rhs: rhs}
}

// Index returns the production's stable index in [0, P).
func (p *Production) Index() int {
	return p.index
}

// LHS returns the production's left-hand-side nonterminal.
func (p *Production) LHS() symbol.Symbol {
	return p.lhs
}

// RHS returns the production's right-hand side. The caller must not modify
// the returned slice.
func (p *Production) RHS() []symbol.Symbol {
	return p.rhs
}

// RHSLen returns len(RHS()).
func (p *Production) RHSLen() int {
	return len(p.rhs)
}

// IsEmpty reports whether the production is an ε-production.
func (p *Production) IsEmpty() bool {
	return len(p.rhs) == 0
}

// At returns the RHS symbol at offset k, or symbol.Nil if k is at or past
// the end of the RHS.
func (p *Production) At(k int) symbol.Symbol {
	if k < 0 || k >= len(p.rhs) {
		return symbol.Nil
	}
	return p.rhs[k]
}

func (p *Production) String() string {
	return fmt.Sprintf("%v -> %v", p.lhs, p.rhs)
}

// productionSet groups productions by insertion order and by left-hand
// side, preserving the original order within each group (spec.md §4.2).
type productionSet struct {
	all   []*Production
	byLHS map[symbol.Symbol][]*Production
}

// newProductionSet groups prods by LHS. prods must already carry their
// final, stable indices (production 0 is the augmented start production).
func newProductionSet(prods []*Production) *productionSet {
	ps := &productionSet{
		all:   prods,
		byLHS: map[symbol.Symbol][]*Production{},
	}
	for _, p := range prods {
		ps.byLHS[p.lhs] = append(ps.byLHS[p.lhs], p)
	}
	return ps
}

func (ps *productionSet) len() int {
	return len(ps.all)
}

func (ps *productionSet) byIndex(i int) (*Production, bool) {
	if i < 0 || i >= len(ps.all) {
		return nil, false
	}
	return ps.all[i], true
}

// productionsOf returns the ordered, nonempty list of productions whose LHS
// is nt. A nil/empty result means nt has no productions, which is a
// construction-time error (spec.md §4.2).
func (ps *productionSet) productionsOf(nt symbol.Symbol) []*Production {
	return ps.byLHS[nt]
}
