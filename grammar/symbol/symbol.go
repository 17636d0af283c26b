// Package symbol implements the identity and classification of terminal and
// nonterminal grammar symbols: the leaf component of the grammar analysis
// engine (spec.md §3 "Symbol").
package symbol

import (
	"fmt"
	"sort"
)

// Kind distinguishes a terminal symbol from a nonterminal one. There is no
// further subkind (no distinguished "start" or "EOF" bit): the augmented
// start production is recognized structurally, as production 0, and the
// end-of-input look-ahead is a plain terminal registered by the caller that
// builds the follow tables.
type Kind uint8

const (
	kindNil Kind = iota
	NonTerminal
	Terminal
)

func (k Kind) String() string {
	switch k {
	case NonTerminal:
		return "non-terminal"
	case Terminal:
		return "terminal"
	default:
		return "nil"
	}
}

// Symbol is either a terminal or a nonterminal with a dense, zero-based
// index within its kind. The zero value, Nil, represents "no symbol" and is
// used as the dotted symbol of a reducing item.
type Symbol struct {
	kind  Kind
	index int
}

// Nil is the distinguished "no symbol" value.
var Nil = Symbol{}

func (s Symbol) String() string {
	if s.IsNil() {
		return "<nil>"
	}
	prefix := "n"
	if s.kind == Terminal {
		prefix = "t"
	}
	return fmt.Sprintf("%v%v", prefix, s.index)
}

// IsNil reports whether s is the distinguished Nil value.
func (s Symbol) IsNil() bool {
	return s.kind == kindNil
}

// IsTerminal reports whether s is a terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s.kind == Terminal
}

// IsNonTerminal reports whether s is a nonterminal symbol.
func (s Symbol) IsNonTerminal() bool {
	return s.kind == NonTerminal
}

// Kind returns the symbol's kind. Calling Kind on Nil returns a kind that is
// neither Terminal nor NonTerminal.
func (s Symbol) Kind() Kind {
	return s.kind
}

// Index returns the symbol's dense, zero-based index within its kind.
// Index is undefined for Nil.
func (s Symbol) Index() int {
	return s.index
}

func newNonTerminal(index int) Symbol {
	return Symbol{kind: NonTerminal, index: index}
}

func newTerminal(index int) Symbol {
	return Symbol{kind: Terminal, index: index}
}

// NewNonTerminal reconstructs a nonterminal Symbol from a dense index. It is
// for callers (such as the grammar package) that already track indices
// themselves, e.g. when turning a bitset of FIRST/FOLLOW terminals back into
// Symbol values; it performs no table lookup or registration.
func NewNonTerminal(index int) Symbol {
	return newNonTerminal(index)
}

// NewTerminal reconstructs a terminal Symbol from a dense index. See
// NewNonTerminal.
func NewTerminal(index int) Symbol {
	return newTerminal(index)
}

// Table maps symbol names to Symbol values and back, assigning dense,
// zero-based indices within each kind in first-registration order. Table is
// the external front end's responsibility to populate (spec.md §1 treats the
// concrete grammar syntax as an external collaborator); the engine only
// consumes the Symbol values it produces.
type Table struct {
	text2Sym map[string]Symbol
	sym2Text map[Symbol]string

	nonTermTexts []string
	termTexts    []string
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		text2Sym: map[string]Symbol{},
		sym2Text: map[Symbol]string{},
	}
}

// Writer returns a handle that can register new symbols in the table.
func (t *Table) Writer() *TableWriter {
	return &TableWriter{Table: t}
}

// Reader returns a handle that can query the table read-only.
func (t *Table) Reader() *TableReader {
	return &TableReader{Table: t}
}

// TableWriter registers new symbols.
type TableWriter struct {
	*Table
}

// TableReader queries an existing table.
type TableReader struct {
	*Table
}

// RegisterNonTerminal assigns (or returns the existing) Symbol for a
// nonterminal name.
func (w *TableWriter) RegisterNonTerminal(text string) Symbol {
	if sym, ok := w.text2Sym[text]; ok {
		return sym
	}
	sym := newNonTerminal(len(w.nonTermTexts))
	w.nonTermTexts = append(w.nonTermTexts, text)
	w.text2Sym[text] = sym
	w.sym2Text[sym] = text
	return sym
}

// RegisterTerminal assigns (or returns the existing) Symbol for a terminal
// name.
func (w *TableWriter) RegisterTerminal(text string) Symbol {
	if sym, ok := w.text2Sym[text]; ok {
		return sym
	}
	sym := newTerminal(len(w.termTexts))
	w.termTexts = append(w.termTexts, text)
	w.text2Sym[text] = sym
	w.sym2Text[sym] = text
	return sym
}

// ToSymbol looks up a name previously registered with the writer.
func (r *TableReader) ToSymbol(text string) (Symbol, bool) {
	sym, ok := r.text2Sym[text]
	return sym, ok
}

// ToText returns the name a symbol was registered under.
func (r *TableReader) ToText(sym Symbol) (string, bool) {
	text, ok := r.sym2Text[sym]
	return text, ok
}

// NonTerminalCount returns the number of distinct nonterminals registered,
// i.e. N in spec.md's notation.
func (r *TableReader) NonTerminalCount() int {
	return len(r.nonTermTexts)
}

// TerminalCount returns the number of distinct terminals registered, i.e. T
// in spec.md's notation.
func (r *TableReader) TerminalCount() int {
	return len(r.termTexts)
}

// NonTerminalSymbols returns every registered nonterminal, ordered by index.
func (r *TableReader) NonTerminalSymbols() []Symbol {
	syms := make([]Symbol, len(r.nonTermTexts))
	for sym := range r.sym2Text {
		if sym.IsNonTerminal() {
			syms[sym.Index()] = sym
		}
	}
	return syms
}

// TerminalSymbols returns every registered terminal, ordered by index.
func (r *TableReader) TerminalSymbols() []Symbol {
	syms := make([]Symbol, len(r.termTexts))
	for sym := range r.sym2Text {
		if sym.IsTerminal() {
			syms[sym.Index()] = sym
		}
	}
	return syms
}

// NonTerminalTexts returns the registered nonterminal names, ordered by
// index.
func (r *TableReader) NonTerminalTexts() []string {
	out := make([]string, len(r.nonTermTexts))
	copy(out, r.nonTermTexts)
	return out
}

// TerminalTexts returns the registered terminal names, ordered by index.
func (r *TableReader) TerminalTexts() []string {
	out := make([]string, len(r.termTexts))
	copy(out, r.termTexts)
	return out
}

// SortSymbols sorts symbols with nonterminals before terminals and,
// within a kind, by ascending index -- the same order component indices use.
func SortSymbols(syms []Symbol) {
	sort.Slice(syms, func(i, j int) bool {
		a, b := syms[i], syms[j]
		if a.kind != b.kind {
			return a.kind == NonTerminal
		}
		return a.index < b.index
	})
}
