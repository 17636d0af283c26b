package grammar

import (
	"testing"

	"github.com/mnhkahn/lrgen/grammar/symbol"
)

// buildTestProductions is a small helper shared by this file's tests: it
// wraps (lhs-name, rhs-names...) tuples into a productionSet, registering
// every name in the caller's table tab, which the caller then uses for
// symbol lookups.
func buildTestProductions(t *testing.T, tab *symbol.Table, rules [][2]interface{}) *productionSet {
	t.Helper()
	w := tab.Writer()
	var prods []*Production
	for i, r := range rules {
		lhsName := r[0].(string)
		rhsNames := r[1].([]string)
		lhs := w.RegisterNonTerminal(lhsName)
		rhs := make([]symbol.Symbol, len(rhsNames))
		for j, n := range rhsNames {
			rhs[j] = resolveTestSymbol(w, n)
		}
		prods = append(prods, newProduction(i, lhs, rhs))
	}
	return newProductionSet(prods)
}

// resolveTestSymbol treats a name starting with a lowercase letter as a
// terminal and anything else as a nonterminal -- purely a test convenience.
func resolveTestSymbol(w *symbol.TableWriter, name string) symbol.Symbol {
	if name == "" {
		return symbol.Nil
	}
	if name[0] >= 'a' && name[0] <= 'z' {
		return w.RegisterTerminal(name)
	}
	return w.RegisterNonTerminal(name)
}

func TestGeneratesIsReflexive(t *testing.T) {
	tab := symbol.NewTable()
	ps := buildTestProductions(t, tab, [][2]interface{}{
		{"S", []string{"E"}},
		{"E", []string{"id"}},
	})
	gt := buildGeneratesTable(tab.Reader().NonTerminalCount(), ps)

	for _, nt := range tab.Reader().NonTerminalSymbols() {
		if !gt.generates(nt, nt) {
			t.Errorf("generates(%v,%v) = false, want true (reflexive)", nt, nt)
		}
	}
}

func TestGeneratesTransitiveClosure(t *testing.T) {
	tab := symbol.NewTable()
	// S -> E, E -> T, T -> id : S generates E and T (transitively).
	ps := buildTestProductions(t, tab, [][2]interface{}{
		{"S", []string{"E"}},
		{"E", []string{"T"}},
		{"T", []string{"id"}},
	})
	gt := buildGeneratesTable(tab.Reader().NonTerminalCount(), ps)

	r := tab.Reader()
	s, _ := r.ToSymbol("S")
	e, _ := r.ToSymbol("E")
	tt, _ := r.ToSymbol("T")

	if !gt.generates(s, e) {
		t.Error("S should generate E directly")
	}
	if !gt.generates(s, tt) {
		t.Error("S should generate T transitively through E")
	}
	if gt.generates(tt, s) {
		t.Error("T must not generate S")
	}
}

func TestGeneratesLeftRecursionDoesNotDiverge(t *testing.T) {
	tab := symbol.NewTable()
	// L -> L a | b : self-referential, must terminate and generates[L][L]=1 only.
	ps := buildTestProductions(t, tab, [][2]interface{}{
		{"L", []string{"L", "a"}},
		{"L", []string{"b"}},
	})
	gt := buildGeneratesTable(tab.Reader().NonTerminalCount(), ps)

	l, _ := tab.Reader().ToSymbol("L")
	if !gt.generates(l, l) {
		t.Error("generates(L,L) must be true")
	}
	if len(gt.reachableFrom(l)) != 1 {
		t.Errorf("L should only generate itself, got %v", gt.reachableFrom(l))
	}
}
