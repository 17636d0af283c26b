package grammar

import (
	"testing"

	"github.com/mnhkahn/lrgen/grammar/symbol"
)

// rule is a test-only production shorthand: an LHS name and ordered RHS
// names. A name starting with a lowercase letter is a terminal; anything
// else is a nonterminal. Names must be non-empty. An empty rhs slice is an
// ε-production.
type rule struct {
	lhs string
	rhs []string
}

// buildTestGrammar registers symbols for every name appearing in start/rules,
// prepends the augmented start production start' -> start, and calls Build.
// It fails the test immediately on a build error, since every scenario this
// helper serves is expected to succeed.
func buildTestGrammar(t *testing.T, start string, rules []rule) (*Grammar, *symbol.Table) {
	t.Helper()
	tab := symbol.NewTable()
	w := tab.Writer()

	endOfInput := w.RegisterTerminal("$end")
	startSym := w.RegisterNonTerminal(start)
	augStart := w.RegisterNonTerminal(start + "'")

	defs := []ProductionDef{{LHS: augStart, RHS: []symbol.Symbol{startSym}}}
	for _, r := range rules {
		lhs := w.RegisterNonTerminal(r.lhs)
		rhs := make([]symbol.Symbol, len(r.rhs))
		for i, n := range r.rhs {
			rhs[i] = testSymbol(w, n)
		}
		defs = append(defs, ProductionDef{LHS: lhs, RHS: rhs})
	}

	g, err := Build(tab, defs, endOfInput)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g, tab
}

func testSymbol(w *symbol.TableWriter, name string) symbol.Symbol {
	if name[0] >= 'a' && name[0] <= 'z' {
		return w.RegisterTerminal(name)
	}
	return w.RegisterNonTerminal(name)
}

// mustSymbol looks up a previously registered name, failing the test if it
// was never registered.
func mustSymbol(t *testing.T, tab *symbol.Table, name string) symbol.Symbol {
	t.Helper()
	sym, ok := tab.Reader().ToSymbol(name)
	if !ok {
		t.Fatalf("symbol %q was never registered", name)
	}
	return sym
}
