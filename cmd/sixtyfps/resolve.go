package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/diagfmt"
	"github.com/Be-ing/sixtyfps/internal/driver"
	"github.com/Be-ing/sixtyfps/internal/project"
	"github.com/Be-ing/sixtyfps/internal/trace"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] <file.60.mp|directory>",
	Short: "Resolve the bindings of parsed .60 documents",
	Long: `Resolve type-checks every binding of the given parser output file, or of all
*.60.mp files within a directory, and reports the diagnostics`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	resolveCmd.Flags().Bool("emit-tree", false, "print the resolved element tree")
	resolveCmd.Flags().Bool("ui", false, "show a progress view while resolving")
	resolveCmd.Flags().Int("jobs", 0, "max parallel decoders (0=auto)")
	resolveCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	resolveCmd.Flags().StringSlice("include", nil, "extra include directory for resource paths (repeatable)")
	resolveCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	resolveCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	resolveCmd.Flags().Bool("preview", false, "preview the lines a fix would produce")
	resolveCmd.Flags().String("path-mode", "auto", "path display (auto|absolute|relative|basename)")
}

type resolveFlags struct {
	format           string
	emitTree         bool
	ui               bool
	jobs             int
	warningsAsErrors bool
	includes         []string
	withNotes        bool
	suggest          bool
	preview          bool
	pathMode         diagfmt.PathMode
	maxDiagnostics   int
	maxChanged       bool
	timings          bool
	quiet            bool
}

func readResolveFlags(cmd *cobra.Command) (resolveFlags, error) {
	var f resolveFlags
	var err error
	flags := cmd.Flags()
	if f.format, err = flags.GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format {
	case "pretty", "json", "short":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.emitTree, err = flags.GetBool("emit-tree"); err != nil {
		return f, fmt.Errorf("failed to get emit-tree flag: %w", err)
	}
	if f.ui, err = flags.GetBool("ui"); err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.warningsAsErrors, err = flags.GetBool("warnings-as-errors"); err != nil {
		return f, fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if f.includes, err = flags.GetStringSlice("include"); err != nil {
		return f, fmt.Errorf("failed to get include flag: %w", err)
	}
	if f.withNotes, err = flags.GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.suggest, err = flags.GetBool("suggest"); err != nil {
		return f, fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if f.preview, err = flags.GetBool("preview"); err != nil {
		return f, fmt.Errorf("failed to get preview flag: %w", err)
	}
	modeStr, err := flags.GetString("path-mode")
	if err != nil {
		return f, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	var ok bool
	if f.pathMode, ok = diagfmt.ParsePathMode(modeStr); !ok {
		return f, fmt.Errorf("unknown path mode: %s", modeStr)
	}

	root := cmd.Root().PersistentFlags()
	if f.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return f, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	f.maxChanged = root.Changed("max-diagnostics")
	if f.timings, err = root.GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if f.quiet, err = root.GetBool("quiet"); err != nil {
		return f, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	return f, nil
}

// driverOptions merges the manifest found above target with the flags.
// Flags win; include directories from both are searched, flags first.
func driverOptions(target string, f resolveFlags) (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics:   f.maxDiagnostics,
		Jobs:             f.jobs,
		WarningsAsErrors: f.warningsAsErrors,
		EnableTimings:    f.timings,
		Log:              log.StandardLogger(),
	}
	for _, inc := range f.includes {
		abs, err := filepath.Abs(inc)
		if err != nil {
			return opts, fmt.Errorf("include %s: %w", inc, err)
		}
		opts.IncludeDirs = append(opts.IncludeDirs, abs)
	}

	startDir := target
	if st, err := os.Stat(target); err == nil && !st.IsDir() {
		startDir = filepath.Dir(target)
	}
	manifest, ok, err := project.LoadManifest(startDir)
	if err != nil {
		return opts, err
	}
	if !ok {
		log.Debugf("no %s above %s", project.ManifestName, startDir)
		if wd, err := os.Getwd(); err == nil {
			opts.BaseDir = wd
		}
		return opts, nil
	}
	log.WithFields(log.Fields{
		"manifest": manifest.Path,
		"package":  manifest.Config.Package.Name,
		"style":    manifest.Config.Resolve.Style,
	}).Debug("loaded project manifest")
	opts.BaseDir = manifest.Root
	opts.IncludeDirs = append(opts.IncludeDirs, manifest.IncludeDirs()...)
	if !f.maxChanged && manifest.Config.Resolve.MaxDiagnostics > 0 {
		opts.MaxDiagnostics = manifest.Config.Resolve.MaxDiagnostics
	}
	return opts, nil
}

func runResolve(cmd *cobra.Command, args []string) (err error) {
	target := args[0]
	f, err := readResolveFlags(cmd)
	if err != nil {
		return err
	}

	tr, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			tr.close(cmd, true)
			panic(r)
		}
		tr.close(cmd, err != nil && !errors.Is(err, errFailed))
	}()
	profiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := profiling.Stop(); stopErr != nil {
			log.WithError(stopErr).Warn("profiling")
		}
	}()

	ctx := cmd.Context()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "cmd:resolve", 0).WithExtra("target", target)
	defer span.End("")
	ctx = trace.WithParentSpan(ctx, span.ID())

	opts, err := driverOptions(target, f)
	if err != nil {
		return err
	}
	files, err := driver.ListDocuments(target)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files in %s", driver.InterchangeExt, target)
	}
	log.Debugf("resolving %d documents", len(files))

	var result *driver.Result
	if f.ui && isTerminal(os.Stderr) {
		result, err = runResolveWithUI(ctx, "resolving "+target, files, opts)
	} else {
		result, err = driver.Resolve(ctx, files, opts)
	}
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	if err := printDiagnostics(os.Stdout, result, f); err != nil {
		return err
	}
	if f.emitTree {
		fmt.Fprintln(os.Stdout, "\n== TREE ==")
		if err := result.EmitTree(os.Stdout, true); err != nil {
			return fmt.Errorf("failed to emit tree: %w", err)
		}
	}
	if f.timings && !f.quiet {
		fmt.Fprint(os.Stderr, result.TimingSummary())
	}
	if result.HasErrors() {
		return errFailed
	}
	return nil
}

func printDiagnostics(w *os.File, result *driver.Result, f resolveFlags) error {
	showFixes := f.suggest || f.preview
	switch f.format {
	case "pretty":
		diagfmt.Pretty(w, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:       !color.NoColor,
			Context:     2,
			PathMode:    f.pathMode,
			ShowNotes:   f.withNotes,
			ShowFixes:   showFixes,
			ShowPreview: f.preview,
		})
	case "short":
		diagfmt.Short(w, result.Bag, result.FileSet, f.pathMode)
	case "json":
		err := diagfmt.JSON(w, result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         f.pathMode,
			IncludeNotes:     f.withNotes,
			IncludeFixes:     showFixes,
			IncludePreviews:  f.preview,
		})
		if err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	}
	if f.format != "json" && !f.quiet && result.Bag.Len() > 0 {
		fmt.Fprintln(os.Stderr, summaryLine(result))
	}
	return nil
}

func summaryLine(result *driver.Result) string {
	var parts []string
	for _, kv := range []struct {
		n    int
		word string
	}{
		{result.Bag.Count(diag.SevError), "error"},
		{result.Bag.Count(diag.SevWarning), "warning"},
	} {
		if kv.n == 0 {
			continue
		}
		word := kv.word
		if kv.n != 1 {
			word += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", kv.n, word))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d documents resolved", len(result.Documents))
	}
	return fmt.Sprintf("%s in %d documents", strings.Join(parts, ", "), len(result.Documents))
}
