package main

import (
	"github.com/mnhkahn/lrgen/grammar"
	"github.com/mnhkahn/lrgen/grammar/symbol"
)

// description is the on-disk JSON shape a "build" writes and a "show"/
// "inspect" reads back, grounded on vartan/spec.Description -- the
// teacher's own compiled-grammar interchange format -- adapted from its
// parsing-table fields to this engine's kernel collection.
type description struct {
	NonTerminals []string         `json:"non_terminals"`
	Terminals    []string         `json:"terminals"`
	Productions  []productionDesc `json:"productions"`
	Kernels      []kernelDesc     `json:"kernels"`
}

type productionDesc struct {
	Number int      `json:"number"`
	LHS    string   `json:"lhs"`
	RHS    []string `json:"rhs"`
}

type itemDesc struct {
	Production int      `json:"production"`
	Dot        int      `json:"dot"`
	LookAhead  []string `json:"look_ahead,omitempty"`
}

type gotoDesc struct {
	Component string `json:"component"`
	Kernel    int    `json:"kernel"`
}

type kernelDesc struct {
	Number int        `json:"number"`
	Items  []itemDesc `json:"items"`
	GoTo   []gotoDesc `json:"goto"`
}

// describeGrammar flattens a built *grammar.Grammar into its JSON
// description, resolving every Symbol back to the name it was registered
// under.
func describeGrammar(g *grammar.Grammar) *description {
	r := g.SymbolTable().Reader()

	d := &description{
		NonTerminals: r.NonTerminalTexts(),
		Terminals:    r.TerminalTexts(),
	}

	for i := 0; i < g.ProductionCount(); i++ {
		p, _ := g.ProductionAt(i)
		lhsText, _ := r.ToText(p.LHS())
		rhsTexts := make([]string, p.RHSLen())
		for j, s := range p.RHS() {
			rhsTexts[j], _ = r.ToText(s)
		}
		d.Productions = append(d.Productions, productionDesc{
			Number: i,
			LHS:    lhsText,
			RHS:    rhsTexts,
		})
	}

	allSyms := append(append([]symbol.Symbol{}, r.NonTerminalSymbols()...), r.TerminalSymbols()...)

	for id := 0; id < g.KernelCount(); id++ {
		kd := kernelDesc{Number: id}

		follows := g.KernelFollows(id)
		for i, code := range g.KernelItems(id) {
			p, dot := g.Decode(code)
			var la []string
			for _, s := range follows[i] {
				text, _ := r.ToText(s)
				la = append(la, text)
			}
			kd.Items = append(kd.Items, itemDesc{Production: p, Dot: dot, LookAhead: la})
		}

		// Empty-production items never shift, so they never appear in
		// KernelItems; list them alongside the kernel's ordinary items so a
		// built description never silently drops their reduce look-ahead.
		emptyFollows := g.KernelEmptyProdFollows(id)
		for i, code := range g.KernelEmptyProdItems(id) {
			p, dot := g.Decode(code)
			var la []string
			for _, s := range emptyFollows[i] {
				text, _ := r.ToText(s)
				la = append(la, text)
			}
			kd.Items = append(kd.Items, itemDesc{Production: p, Dot: dot, LookAhead: la})
		}

		for _, s := range allSyms {
			dest := g.KernelGoto(id, g.ComponentIndex(s))
			if dest == grammar.NoKernel {
				continue
			}
			text, _ := r.ToText(s)
			kd.GoTo = append(kd.GoTo, gotoDesc{Component: text, Kernel: dest})
		}

		d.Kernels = append(d.Kernels, kd)
	}

	return d
}
