package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print a built kernel collection in readable format",
		Example: `  lrgen show grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	d, err := readDescription(args[0])
	if err != nil {
		return err
	}
	return writeDescription(os.Stdout, d)
}

func readDescription(path string) (*description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the description file %s: %w", path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	d := &description{}
	if err := json.Unmarshal(b, d); err != nil {
		return nil, err
	}
	return d, nil
}

const descTemplate = `# Nonterminals
{{ range .NonTerminals }}  {{ . }}
{{ end }}
# Terminals
{{ range .Terminals }}  {{ . }}
{{ end }}
# Productions
{{ range .Productions }}{{ printProduction . }}
{{ end }}
# Kernels
{{ range .Kernels }}
## Kernel {{ .Number }}
{{ range .Items -}}
{{ printItem $ . }}
{{ end -}}
{{ range .GoTo -}}
{{ printGoto . }}
{{ end }}{{ end }}`

func writeDescription(w io.Writer, d *description) error {
	fns := template.FuncMap{
		"printProduction": func(p productionDesc) string {
			var b strings.Builder
			fmt.Fprintf(&b, "%4v %v →", p.Number, p.LHS)
			if len(p.RHS) == 0 {
				fmt.Fprintf(&b, " ε")
			}
			for _, s := range p.RHS {
				fmt.Fprintf(&b, " %v", s)
			}
			return b.String()
		},
		"printItem": func(d *description, item itemDesc) string {
			p := d.Productions[item.Production]
			var b strings.Builder
			fmt.Fprintf(&b, "%4v %v →", p.Number, p.LHS)
			for i, s := range p.RHS {
				if i == item.Dot {
					fmt.Fprintf(&b, " ・")
				}
				fmt.Fprintf(&b, " %v", s)
			}
			if item.Dot >= len(p.RHS) {
				fmt.Fprintf(&b, " ・")
			}
			if len(item.LookAhead) > 0 {
				fmt.Fprintf(&b, "  [%v]", strings.Join(item.LookAhead, ", "))
			}
			return b.String()
		},
		"printGoto": func(g gotoDesc) string {
			return fmt.Sprintf("goto   %4v on %v", g.Kernel, g.Component)
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(descTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, d)
}
