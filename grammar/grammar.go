// Package grammar implements the LR(0)/LALR(1) grammar analysis engine:
// given a prebuilt list of productions and symbols it constructs the
// canonical collection of LR(0) kernels, the goto relation between them, and
// the FIRST/look-ahead machinery needed to drive an ACTION/GOTO table
// emitter (which remains an external collaborator; see spec.md §1).
package grammar

import (
	"fmt"

	"github.com/mnhkahn/lrgen/grammar/symbol"
)

// NoKernel is the goto-table sentinel meaning "no successor kernel".
const NoKernel = noneKernel

// ProductionDef is one input production: an LHS nonterminal and an ordered
// (possibly empty) RHS. Production 0 must be the augmented start production
// S' -> S (spec.md §4.6). ProductionDef values reference Symbols already
// registered in the symbol.Table passed to Build -- resolving grammar
// source text to symbols is the front end's job, out of scope here
// (spec.md §1).
type ProductionDef struct {
	LHS symbol.Symbol
	RHS []symbol.Symbol
}

// Grammar is the immutable, fully constructed result of Build: the
// productions-by-nonterminal index, the generates closure, the canonical
// kernel collection with its goto vectors, and the per-nonterminal FIRST
// sets. It may be shared by multiple readers without synchronization
// (spec.md §5).
type Grammar struct {
	table *symbol.Table

	nonTermCount int
	termCount    int

	prods     *productionSet
	generates *generatesTable
	codec     itemCodec

	interner *kernelInterner

	first *firstSets

	// endOfInput is the terminal the LALR(1) follow phase seeds the
	// augmented start item's look-ahead with (SPEC_FULL.md §4.7). It is
	// an ordinary terminal the caller registered and passed to Build, not
	// a distinguished Symbol kind: the engine never needs to recognize
	// end-of-input except as the seed of this one propagation.
	endOfInput symbol.Symbol
}

// componentCount returns N+T, the size of the unified component-index
// space used by goto vectors (spec.md §3).
func (g *Grammar) componentCount() int {
	return g.nonTermCount + g.termCount
}

// ComponentCount returns N+T.
func (g *Grammar) ComponentCount() int {
	return g.componentCount()
}

// ComponentIndex maps a symbol to its unified component index: nonterminals
// occupy [0,N), terminals occupy [N,N+T) (spec.md §3). Reversing this
// ordering anywhere without updating every caller breaks goto-vector
// indexing, per spec.md's contractual note.
func (g *Grammar) ComponentIndex(sym symbol.Symbol) int {
	if sym.IsNonTerminal() {
		return sym.Index()
	}
	return g.nonTermCount + sym.Index()
}

// KernelCount returns the number of kernels in the canonical collection.
func (g *Grammar) KernelCount() int {
	return g.interner.len()
}

// KernelItems returns the sorted, deduplicated encoded items of kernel id.
// The caller must not modify the returned slice.
func (g *Grammar) KernelItems(id int) []int {
	return g.interner.get(id).items
}

// KernelGoto returns the successor kernel id reached from kernel id by
// shifting component c, or NoKernel.
func (g *Grammar) KernelGoto(id, component int) int {
	return g.interner.get(id).goTo[component]
}

// KernelEmptyProdItems returns the encoded empty-production items closed
// over kernel id: items (q,0) for an empty production q that are
// simultaneously their own reducing item and never shift, so they never
// appear in KernelItems (kernel.go's emptyProdItems; SPEC_FULL.md §4.7).
func (g *Grammar) KernelEmptyProdItems(id int) []int {
	return g.interner.get(id).emptyProdItems
}

// KernelEmptyProdFollows returns the look-ahead terminal set for each item
// of KernelEmptyProdItems(id), aligned by position, populated by the
// LALR(1) follow phase's buildFollows (SPEC_FULL.md §4.7).
func (g *Grammar) KernelEmptyProdFollows(id int) [][]symbol.Symbol {
	k := g.interner.get(id)
	out := make([][]symbol.Symbol, len(k.emptyProdItems))
	for i, ts := range k.emptyProdFollows {
		out[i] = termsToSymbols(ts)
	}
	return out
}

// Decode unpacks an encoded item into its production index and dot offset.
func (g *Grammar) Decode(code int) (prod, dot int) {
	return g.codec.decode(code)
}

// Encode packs a production index and dot offset into an encoded item.
func (g *Grammar) Encode(prod, dot int) int {
	return g.codec.encode(prod, dot)
}

// IsAccept reports whether code decodes to the reducing item of production
// 0, i.e. the accept item (spec.md §4.6).
func (g *Grammar) IsAccept(code int) bool {
	prod, dot := g.codec.decode(code)
	if prod != 0 {
		return false
	}
	p, _ := g.prods.byIndex(0)
	return dot == p.RHSLen()
}

// ProductionAt returns the production with the given index.
func (g *Grammar) ProductionAt(i int) (*Production, bool) {
	return g.prods.byIndex(i)
}

// ProductionCount returns P, the number of productions.
func (g *Grammar) ProductionCount() int {
	return g.prods.len()
}

// FirstOf returns FIRST(nt) as terminal symbols, sorted by index.
func (g *Grammar) FirstOf(nt symbol.Symbol) []symbol.Symbol {
	set := g.first.of(nt)
	out := make([]symbol.Symbol, 0, len(set.bits))
	for _, idx := range set.slice() {
		out = append(out, symbol.NewTerminal(idx))
	}
	return out
}

// IsNullable reports whether nt can derive the empty string.
func (g *Grammar) IsNullable(nt symbol.Symbol) bool {
	return g.first.nullable[nt.Index()]
}

// SymbolTable returns the symbol table the grammar was built from.
func (g *Grammar) SymbolTable() *symbol.Table {
	return g.table
}

// KernelFollows returns the look-ahead terminal set for each item of kernel
// id, aligned with KernelItems(id), populated by the LALR(1) follow phase
// (SPEC_FULL.md §4.7).
func (g *Grammar) KernelFollows(id int) [][]symbol.Symbol {
	k := g.interner.get(id)
	out := make([][]symbol.Symbol, len(k.items))
	for i, ts := range k.follows {
		out[i] = termsToSymbols(ts)
	}
	return out
}

func termsToSymbols(ts *termSet) []symbol.Symbol {
	if ts == nil {
		return nil
	}
	idxs := ts.slice()
	out := make([]symbol.Symbol, len(idxs))
	for i, idx := range idxs {
		out[i] = symbol.NewTerminal(idx)
	}
	return out
}

// Build validates the input productions, then constructs the grammar index,
// the canonical LR(0) kernel collection with goto vectors, the
// per-nonterminal FIRST sets, and the LALR(1) follow tables. endOfInput is
// the terminal used to seed the augmented start item's look-ahead; it must
// already be registered in table (front ends conventionally register it
// first or last, e.g. as "$end"). Build returns a single typed *BuildError on
// any structural problem; no partial Grammar is ever returned (spec.md §6,
// §7).
func Build(table *symbol.Table, defs []ProductionDef, endOfInput symbol.Symbol) (*Grammar, error) {
	r := table.Reader()
	n, t := r.NonTerminalCount(), r.TerminalCount()

	if len(defs) == 0 {
		return nil, errMissingStartProduction("no productions were supplied")
	}
	if !endOfInput.IsTerminal() || endOfInput.Index() >= t {
		return nil, errIndexOutOfRange(fmt.Sprintf("end-of-input symbol %v is not a registered terminal", endOfInput))
	}

	prods := make([]*Production, len(defs))
	for i, d := range defs {
		if d.LHS.IsNil() || !d.LHS.IsNonTerminal() || d.LHS.Index() >= n {
			return nil, errIndexOutOfRange(fmt.Sprintf("production %v has an invalid LHS: %v", i, d.LHS))
		}
		rhs := make([]symbol.Symbol, len(d.RHS))
		for j, s := range d.RHS {
			if s.IsNil() {
				return nil, errIndexOutOfRange(fmt.Sprintf("production %v RHS position %v is nil", i, j))
			}
			if (s.IsNonTerminal() && s.Index() >= n) || (s.IsTerminal() && s.Index() >= t) {
				return nil, errIndexOutOfRange(fmt.Sprintf("production %v RHS position %v references an unknown symbol: %v", i, j, s))
			}
			rhs[j] = s
		}
		prods[i] = newProduction(i, d.LHS, rhs)
	}

	start := prods[0]
	if start.RHSLen() != 1 || !start.At(0).IsNonTerminal() {
		return nil, errMissingStartProduction("production 0 must have the form S' -> S")
	}
	for _, p := range prods {
		if p.index != 0 && p.LHS() == start.LHS() {
			return nil, errMissingStartProduction("the augmented start nonterminal must have exactly one production")
		}
	}

	ps := newProductionSet(prods)
	for i := 0; i < n; i++ {
		nt := symbol.NewNonTerminal(i)
		if len(ps.productionsOf(nt)) == 0 {
			return nil, errEmptyNonterminal(i)
		}
	}

	gen := buildGeneratesTable(n, ps)

	g := &Grammar{
		table:        table,
		nonTermCount: n,
		termCount:    t,
		prods:        ps,
		generates:    gen,
		codec:        newItemCodec(len(prods)),
		interner:     newKernelInterner(),
		endOfInput:   endOfInput,
	}

	if err := g.buildLR0(); err != nil {
		return nil, err
	}

	g.first = computeFirstSets(g)

	g.buildFollows()

	return g, nil
}
