package grammar

import (
	"testing"

	"github.com/mnhkahn/lrgen/grammar/symbol"
)

func firstTexts(t *testing.T, tab *symbol.Table, g *Grammar, nt symbol.Symbol) map[string]bool {
	t.Helper()
	out := map[string]bool{}
	for _, s := range g.FirstOf(nt) {
		text, ok := tab.Reader().ToText(s)
		if !ok {
			t.Fatalf("FIRST set contains unregistered symbol %v", s)
		}
		out[text] = true
	}
	return out
}

func TestFirstOfSimpleGrammar(t *testing.T) {
	// E' -> E; E -> E plus T | T; T -> id
	g, tab := buildTestGrammar(t, "E", []rule{
		{"E", []string{"E", "plus", "T"}},
		{"E", []string{"T"}},
		{"T", []string{"id"}},
	})

	e := mustSymbol(t, tab, "E")
	tt := mustSymbol(t, tab, "T")

	firstE := firstTexts(t, tab, g, e)
	firstT := firstTexts(t, tab, g, tt)

	if !firstE["id"] {
		t.Errorf("FIRST(E) = %v, want it to contain id", firstE)
	}
	if firstE["plus"] {
		t.Errorf("FIRST(E) = %v, must not contain plus (plus is never leftmost)", firstE)
	}
	if !firstT["id"] {
		t.Errorf("FIRST(T) = %v, want it to contain id", firstT)
	}
}

func TestFirstChainsThroughNullableLeadingSymbol(t *testing.T) {
	// This is the epsilon-chaining deviation from a literal reading of the
	// source: A -> B c, B -> (empty). FIRST(A) must include c even though
	// B itself contributes nothing but nullability.
	g, tab := buildTestGrammar(t, "A", []rule{
		{"A", []string{"B", "c"}},
		{"B", []string{}},
	})

	a := mustSymbol(t, tab, "A")
	b := mustSymbol(t, tab, "B")

	if !g.IsNullable(b) {
		t.Fatal("B must be nullable")
	}
	firstA := firstTexts(t, tab, g, a)
	if !firstA["c"] {
		t.Errorf("FIRST(A) = %v, want it to contain c via epsilon-chaining past nullable B", firstA)
	}
}

func TestFirstDoesNotDivergeOnLeftRecursion(t *testing.T) {
	g, tab := buildTestGrammar(t, "L", []rule{
		{"L", []string{"L", "a"}},
		{"L", []string{"b"}},
	})

	l := mustSymbol(t, tab, "L")
	first := firstTexts(t, tab, g, l)
	if len(first) != 1 || !first["b"] {
		t.Errorf("FIRST(L) = %v, want exactly {b}", first)
	}
}
