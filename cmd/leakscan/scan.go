package leakscan

import (
	"fmt"
	"io"
	"os"

	"github.com/leakscan/leakscan/internal/config"
	"github.com/leakscan/leakscan/internal/engine"
	"github.com/leakscan/leakscan/internal/logging"
	"github.com/leakscan/leakscan/internal/report"
	"github.com/leakscan/leakscan/internal/rules"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	flagPatterns        []string
	flagExclude         []string
	flagExcludeGlob     []string
	flagRecursive       bool
	flagOutput          string
	flagDefaultExcludes bool
	flagFailOnFindings  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan <repository-path>",
		Short: "Scan a repository for secrets",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	// Array flags, not slice flags: pattern and exclude values are regex
	// fragments where a comma is ordinary syntax (e.g. "{32,45}"), so they
	// must never be comma-split. Repeat the flag for multiple values.
	cmd.Flags().StringArrayVarP(&flagPatterns, "patterns", "p", nil, "rule names to match, repeatable (default: all built-in rules; unknown names match literally)")
	cmd.Flags().StringArrayVarP(&flagExclude, "exclude", "e", nil, "regex fragments, repeatable; paths containing a match are skipped (regex, not glob: '*.log' is not a wildcard)")
	cmd.Flags().StringArrayVar(&flagExcludeGlob, "exclude-glob", nil, "glob patterns to skip, repeatable (doublestar syntax, e.g. '**/*.log')")
	cmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "scan directories recursively")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write results to this file instead of stdout")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", false, "apply built-in skip list (node_modules, images, lockfiles, ...)")
	cmd.Flags().BoolVar(&flagFailOnFindings, "fail-on-findings", false, "exit non-zero when any finding is reported")
}

func runScan(_ *cobra.Command, args []string) error {
	// The root is used as given: a relative root yields relative finding
	// paths, and exclusion fragments match against those same strings.
	root := args[0]
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("repository path %q is not a valid directory", root)
	}

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}

	log, err := logging.New(flagVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	patterns := pickList(flagPatterns, lcfg.Patterns, gcfg.Patterns)
	if len(patterns) == 0 {
		patterns = rules.BuiltinNames()
	}
	excludes := pickList(flagExclude, lcfg.Exclude, gcfg.Exclude)

	set := rules.Resolve(patterns, rules.Builtins(), log)
	excl, err := engine.CompileExcludes(excludes)
	if err != nil {
		return err
	}

	cfg := engine.Config{
		Root:            root,
		Rules:           set,
		Excludes:        excl,
		ExcludeGlobs:    pickList(flagExcludeGlob, lcfg.ExcludeGlob, gcfg.ExcludeGlob),
		Recursive:       pickBool(flagRecursive, lcfg.Recursive, gcfg.Recursive),
		DefaultExcludes: pickBool(flagDefaultExcludes, lcfg.DefaultExcludes, gcfg.DefaultExcludes),
		Log:             log,
	}

	if flagVerbose {
		log.Infof("scanning repository: %s", root)
		log.Infof("using patterns: %v", set.Names())
		log.Infof("excluding patterns: %v", excludes)
	}

	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return err
	}

	writeResults(res, lcfg, gcfg, log)

	if len(res.Findings) == 0 && flagVerbose {
		log.Info("no secrets found")
	}
	if pickBool(flagFailOnFindings, lcfg.FailOnFindings, gcfg.FailOnFindings) && len(res.Findings) > 0 {
		return fmt.Errorf("%d finding(s) reported", len(res.Findings))
	}
	return nil
}

// writeResults renders the findings to stdout or the configured output file.
// A write failure is logged, never escalated: the scan itself has already
// completed, the results are just unsaved.
func writeResults(res engine.Result, lcfg, gcfg config.FileConfig, log *zap.SugaredLogger) {
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	useColor := !noColor && term.IsTerminal(int(os.Stdout.Fd()))

	output := pickString(flagOutput, lcfg.Output, gcfg.Output)
	var w io.Writer = os.Stdout
	var f *os.File
	if output != "" {
		var err error
		f, err = os.Create(output)
		if err != nil {
			log.Errorf("error writing to output file %s: %v", output, err)
			return
		}
		w = f
		useColor = false
	}

	opts := report.Options{
		Color:        useColor,
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
	}
	var err error
	switch {
	case flagSARIF:
		err = report.WriteSARIF(w, res.Findings, version)
	case flagJSON:
		err = report.WriteJSON(w, res.Findings)
	case flagTable:
		err = report.WriteTable(w, res.Findings, opts)
	default:
		err = report.WriteText(w, res.Findings)
	}
	if err != nil {
		log.Errorf("error writing results: %v", err)
	}
	if f != nil {
		if cerr := f.Close(); cerr != nil {
			log.Errorf("error writing to output file %s: %v", output, cerr)
		} else if err == nil && flagVerbose {
			log.Infof("results saved to %s", output)
		}
	}
}
