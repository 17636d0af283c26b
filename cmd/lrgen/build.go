package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	verr "github.com/mnhkahn/lrgen/error"
	"github.com/mnhkahn/lrgen/internal/gramfile"
	"github.com/spf13/cobra"
)

var buildFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "build [grammar.toml]",
		Short:   "Build the LR(0) kernel collection and LALR(1) look-ahead tables from a grammar description",
		Example: `  lrgen build grammar.toml -o grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runBuild,
	}
	buildFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	gramPath := args[0]

	desc, err := gramfile.Load(gramPath)
	if err != nil {
		return err
	}

	g, err := desc.Build()
	if err != nil {
		return &verr.GrammarError{Cause: err, Path: gramPath}
	}

	var w io.Writer = os.Stdout
	if *buildFlags.output != "" {
		f, err := os.OpenFile(*buildFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("cannot write output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	b, err := json.MarshalIndent(describeGrammar(g), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", string(b))

	return nil
}
