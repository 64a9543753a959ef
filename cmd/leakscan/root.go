package leakscan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagVerbose       bool
	flagNoColor       bool
	flagJSON          bool
	flagSARIF         bool
	flagTable         bool
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the leakscan CLI.
var rootCmd = &cobra.Command{
	Use:           "leakscan",
	Short:         "Scan a directory tree for committed secrets",
	Long:          "Leakscan matches every line of the files under a directory against a set of named secret patterns and reports each hit with its file and line number.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the leakscan CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose diagnostics")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit findings as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit findings as SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "render findings as a table")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update leakscan to the latest release")
}
