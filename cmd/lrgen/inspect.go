package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   "Open an interactive inspector over a built kernel collection",
		Example: `  lrgen inspect grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runInspect,
	}
	rootCmd.AddCommand(cmd)
}

const inspectHelp = `commands:
  kernel <n>     print kernel n's items, look-ahead, and goto table
  first <nt>     FIRST sets are not stored in a built description; reports that
  help           print this message
  quit           exit
`

func runInspect(cmd *cobra.Command, args []string) error {
	d, err := readDescription(args[0])
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "lrgen> ",
	})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	fmt.Fprint(os.Stdout, inspectHelp)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(os.Stdout, inspectHelp)
		case "kernel":
			if err := inspectKernel(d, fields[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		case "first":
			if err := inspectFirst(d, fields[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q; type help for a list\n", fields[0])
		}
	}
}

func inspectKernel(d *description, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: kernel <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= len(d.Kernels) {
		return fmt.Errorf("kernel %q is not a valid kernel number (have %v kernels)", args[0], len(d.Kernels))
	}
	k := d.Kernels[n]
	fmt.Printf("kernel %v\n", k.Number)
	for _, item := range k.Items {
		p := d.Productions[item.Production]
		fmt.Printf("  %v -> ", p.LHS)
		for i, s := range p.RHS {
			if i == item.Dot {
				fmt.Print(". ")
			}
			fmt.Printf("%v ", s)
		}
		if item.Dot >= len(p.RHS) {
			fmt.Print(". ")
		}
		if len(item.LookAhead) > 0 {
			fmt.Printf("[%v]", strings.Join(item.LookAhead, ", "))
		}
		fmt.Println()
	}
	for _, g := range k.GoTo {
		fmt.Printf("  goto %v on %v\n", g.Kernel, g.Component)
	}
	return nil
}

func inspectFirst(d *description, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: first <nonterminal>")
	}
	// A built description does not carry FIRST sets directly (only the
	// look-ahead they fed into); report that explicitly rather than
	// guessing from a kernel's reduce look-ahead, which is FOLLOW, not
	// FIRST.
	return fmt.Errorf("FIRST(%v) is not available from a built description; use the grammar package's Grammar.FirstOf on the built grammar instead", args[0])
}
