package symbol

import "testing"

func TestTableRegistration(t *testing.T) {
	tab := NewTable()
	w := tab.Writer()

	exprP := w.RegisterNonTerminal("expr'")
	expr := w.RegisterNonTerminal("expr")
	term := w.RegisterNonTerminal("term")
	id := w.RegisterTerminal("id")
	add := w.RegisterTerminal("add")

	if exprP.Index() != 0 || expr.Index() != 1 || term.Index() != 2 {
		t.Errorf("nonterminal indices not dense/zero-based: %v %v %v", exprP, expr, term)
	}
	if id.Index() != 0 || add.Index() != 1 {
		t.Errorf("terminal indices not dense/zero-based: %v %v", id, add)
	}

	r := tab.Reader()
	if r.NonTerminalCount() != 3 {
		t.Errorf("NonTerminalCount: got %v, want 3", r.NonTerminalCount())
	}
	if r.TerminalCount() != 2 {
		t.Errorf("TerminalCount: got %v, want 2", r.TerminalCount())
	}

	if sym, ok := r.ToSymbol("term"); !ok || sym != term {
		t.Errorf("ToSymbol(term): got %v, %v", sym, ok)
	}
	if text, ok := r.ToText(add); !ok || text != "add" {
		t.Errorf("ToText(add): got %v, %v", text, ok)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	tab := NewTable()
	w := tab.Writer()

	first := w.RegisterNonTerminal("expr")
	second := w.RegisterNonTerminal("expr")
	if first != second {
		t.Errorf("re-registering a name returned a different symbol: %v != %v", first, second)
	}
	if tab.Reader().NonTerminalCount() != 1 {
		t.Errorf("re-registering a name grew the table")
	}
}

func TestNilSymbol(t *testing.T) {
	if !Nil.IsNil() {
		t.Error("Nil.IsNil() = false")
	}
	if Nil.IsTerminal() || Nil.IsNonTerminal() {
		t.Error("Nil must be neither terminal nor nonterminal")
	}
}

func TestSortSymbols(t *testing.T) {
	tab := NewTable()
	w := tab.Writer()
	a := w.RegisterTerminal("a")
	b := w.RegisterTerminal("b")
	e := w.RegisterNonTerminal("E")
	tt := w.RegisterNonTerminal("T")

	syms := []Symbol{b, a, tt, e}
	SortSymbols(syms)

	want := []Symbol{e, tt, a, b}
	for i := range want {
		if syms[i] != want[i] {
			t.Fatalf("SortSymbols order mismatch at %d: got %v, want %v", i, syms[i], want[i])
		}
	}
}
