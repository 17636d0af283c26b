package grammar

import "testing"

func TestLR0TrivialGrammarHasThreeKernels(t *testing.T) {
	// S' -> S, S -> a. Kernels: {S'->.S}, {S'->S.}, {S->a.}.
	g, _ := buildTestGrammar(t, "S", []rule{
		{"S", []string{"a"}},
	})
	if got, want := g.KernelCount(), 3; got != want {
		t.Errorf("KernelCount() = %v, want %v", got, want)
	}
}

func TestLR0LeftRecursionTerminates(t *testing.T) {
	g, tab := buildTestGrammar(t, "L", []rule{
		{"L", []string{"L", "a"}},
		{"L", []string{"b"}},
	})
	if g.KernelCount() == 0 {
		t.Fatal("expected at least one kernel")
	}
	// Kernel 0 must have a goto on L and on b.
	l := mustSymbol(t, tab, "L")
	b := mustSymbol(t, tab, "b")
	if g.KernelGoto(0, g.ComponentIndex(l)) == NoKernel {
		t.Error("kernel 0 should have a goto on L")
	}
	if g.KernelGoto(0, g.ComponentIndex(b)) == NoKernel {
		t.Error("kernel 0 should have a goto on b")
	}
}

func TestLR0BranchingGrammarSharesPrefixKernel(t *testing.T) {
	// S -> a B | a C; two productions from S share the leading symbol a,
	// so shifting a from kernel 0 must land on a single kernel containing
	// both (S->a.B) and (S->a.C).
	g, tab := buildTestGrammar(t, "S", []rule{
		{"S", []string{"a", "B"}},
		{"S", []string{"a", "C"}},
		{"B", []string{"x"}},
		{"C", []string{"y"}},
	})
	a := mustSymbol(t, tab, "a")
	dest := g.KernelGoto(0, g.ComponentIndex(a))
	if dest == NoKernel {
		t.Fatal("expected a goto on a from kernel 0")
	}
	items := g.KernelItems(dest)
	if len(items) != 2 {
		t.Errorf("kernel reached by shifting a has %v items, want 2 (both S->a.B and S->a.C)", len(items))
	}
}

func TestLR0EmptyProductionClosureDoesNotShift(t *testing.T) {
	// S -> A b; A -> (empty). Shifting A from kernel 0 must lead to the
	// kernel containing (S->A.b); the empty production A->.
	// is a closure member of kernel 0 but never itself a kernel item.
	g, tab := buildTestGrammar(t, "S", []rule{
		{"S", []string{"A", "b"}},
		{"A", []string{}},
	})
	a := mustSymbol(t, tab, "A")
	dest := g.KernelGoto(0, g.ComponentIndex(a))
	if dest == NoKernel {
		t.Fatal("expected a goto on A from kernel 0")
	}
	k0 := g.interner.get(0)
	if len(k0.emptyProdItems) != 1 {
		t.Errorf("kernel 0 emptyProdItems = %v, want exactly 1 (A -> .)", k0.emptyProdItems)
	}
}
