package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mnhkahn/lrgen/internal/diag"
)

var rootFlags = struct {
	logPath *string
}{}

var rootCmd = &cobra.Command{
	Use:   "lrgen",
	Short: "Build and inspect LR(0)/LALR(1) kernel collections from a grammar description",
	Long: `lrgen provides three features:
- Builds the canonical LR(0) kernel collection and LALR(1) look-ahead
  tables from a TOML grammar description.
- Prints a built kernel collection in readable form.
- Opens an interactive inspector over a built kernel collection.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if *rootFlags.logPath == "" {
			return nil
		}
		return diag.Init(*rootFlags.logPath)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		diag.Close()
	},
}

func init() {
	rootFlags.logPath = rootCmd.PersistentFlags().String("log", "", "write diagnostic trace to this file (default: disabled)")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
