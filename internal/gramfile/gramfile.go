// Package gramfile loads a grammar description from a TOML file: the
// concrete syntax spec.md §1 treats as an external collaborator of the
// grammar analysis engine. A description names its terminals and
// nonterminals in registration order, its start symbol, and its ordered
// productions; Load registers them in a symbol.Table and synthesizes the
// augmented start production (spec.md §4.6) the engine's Build requires as
// production 0.
package gramfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mnhkahn/lrgen/grammar"
	"github.com/mnhkahn/lrgen/grammar/symbol"
)

// production is one TOML production entry: an LHS nonterminal name and an
// ordered RHS of terminal/nonterminal names. An empty Rhs is an
// ε-production.
type production struct {
	LHS string   `toml:"lhs"`
	RHS []string `toml:"rhs"`
}

// file is the on-disk shape of a grammar description file.
type file struct {
	Start        string       `toml:"start"`
	EndOfInput   string       `toml:"end_of_input"`
	Terminals    []string     `toml:"terminals"`
	NonTerminals []string     `toml:"nonterminals"`
	Productions  []production `toml:"productions"`
}

// Description is a parsed, not-yet-built grammar description, along with the
// symbol table it was parsed into. Build resolves it into a *grammar.Grammar.
type Description struct {
	table      *symbol.Table
	start      symbol.Symbol
	endOfInput symbol.Symbol
	defs       []grammar.ProductionDef
}

// Load reads and parses a grammar description file at path.
func Load(path string) (*Description, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grammar description %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes TOML grammar description bytes into a Description.
func Parse(data []byte) (*Description, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse grammar description: %w", err)
	}

	if f.Start == "" {
		return nil, fmt.Errorf("parse grammar description: missing start symbol")
	}
	if f.EndOfInput == "" {
		return nil, fmt.Errorf("parse grammar description: missing end_of_input terminal")
	}

	tab := symbol.NewTable()
	w := tab.Writer()

	for _, name := range f.Terminals {
		w.RegisterTerminal(name)
	}
	for _, name := range f.NonTerminals {
		w.RegisterNonTerminal(name)
	}

	endOfInput, ok := tab.Reader().ToSymbol(f.EndOfInput)
	if !ok {
		return nil, fmt.Errorf("parse grammar description: end_of_input terminal %q was not declared in terminals", f.EndOfInput)
	}

	start, ok := tab.Reader().ToSymbol(f.Start)
	if !ok {
		return nil, fmt.Errorf("parse grammar description: start symbol %q was not declared in nonterminals", f.Start)
	}
	if !start.IsNonTerminal() {
		return nil, fmt.Errorf("parse grammar description: start symbol %q must be a nonterminal", f.Start)
	}

	augStart := w.RegisterNonTerminal(f.Start + "'")
	defs := []grammar.ProductionDef{{LHS: augStart, RHS: []symbol.Symbol{start}}}

	for i, p := range f.Productions {
		lhs, ok := tab.Reader().ToSymbol(p.LHS)
		if !ok || !lhs.IsNonTerminal() {
			return nil, fmt.Errorf("parse grammar description: production %v has an undeclared or non-nonterminal LHS %q", i, p.LHS)
		}
		rhs := make([]symbol.Symbol, len(p.RHS))
		for j, name := range p.RHS {
			sym, ok := tab.Reader().ToSymbol(name)
			if !ok {
				return nil, fmt.Errorf("parse grammar description: production %v RHS position %v references undeclared symbol %q", i, j, name)
			}
			rhs[j] = sym
		}
		defs = append(defs, grammar.ProductionDef{LHS: lhs, RHS: rhs})
	}

	return &Description{
		table:      tab,
		start:      start,
		endOfInput: endOfInput,
		defs:       defs,
	}, nil
}

// Build resolves the description into a grammar.Grammar.
func (d *Description) Build() (*grammar.Grammar, error) {
	return grammar.Build(d.table, d.defs, d.endOfInput)
}

// Table returns the symbol table the description was parsed into.
func (d *Description) Table() *symbol.Table {
	return d.table
}
