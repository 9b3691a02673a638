package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/utono/bardclean/internal/classifier"
	"github.com/utono/bardclean/internal/engine"
	"github.com/utono/bardclean/internal/fileio"
	"github.com/utono/bardclean/internal/log"
	"github.com/utono/bardclean/internal/picker"
	"github.com/utono/bardclean/internal/reporter"
	"github.com/utono/bardclean/internal/ui"
)

var (
	force        bool
	noBackup     bool
	dryRun       bool
	jobs         int
	typeOverride string
)

var cleanCmd = &cobra.Command{
	Use:   "clean [files...]",
	Short: "Strip punctuation from dialogue lines",
	Long: `Classify each file and rewrite its dialogue lines, removing commas,
semicolons, colons, exclamation marks, double quotes and dashes.
Periods, question marks and apostrophes are kept.

With no file arguments, an interactive selector is shown over the
configured text directory.

Examples:
  bardclean clean hamlet_gut.txt macbeth_gut.txt
  bardclean clean --dir /path/to/texts --force sonnets_gut.txt
  bardclean clean --format json hamlet_gut.txt`,
	RunE:         runClean,
	SilenceUsage: true,
}

func init() {
	cleanCmd.Flags().BoolVar(&force, "force", false, "Process pure poetry (sonnets, lyric poems)")
	cleanCmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip writing .bak backup files")
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Classify and transform without writing")
	cleanCmd.Flags().IntVar(&jobs, "jobs", 0, "Number of files processed concurrently (default from config)")
	cleanCmd.Flags().StringVar(&typeOverride, "type", "", "Override detected file type (play, narrative_poem, sonnet, lyric_poem)")
	RootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	u := ui.New(os.Stdout, os.Stderr, format)
	logger := log.WithComponent("clean")

	var override *classifier.FileType
	if typeOverride != "" {
		t, ok := classifier.ParseFileType(typeOverride)
		if !ok || t == classifier.TypeUnknown {
			return fmt.Errorf("invalid --type %q", typeOverride)
		}
		override = &t
	}

	files, err := resolveFiles(args, u)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(u.ErrWriter, "No files selected.")
		return nil
	}

	workers := jobs
	if workers <= 0 {
		workers = cfg.Jobs
	}

	opts := engine.Options{TypeOverride: override, Force: force}

	// Each file gets its own machine and stats; only the report slot
	// is shared, and each goroutine writes a distinct index.
	reports := make([]reporter.FileReport, len(files))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			reports[i] = cleanFile(path, opts)
			logger.Debug("file done", "path", path, "status", reports[i].Status.String())
			return nil
		})
	}
	_ = g.Wait()

	if err := report(u, reports); err != nil {
		return err
	}

	if code := reporter.ExitCode(reports); code != 0 {
		exitCode = code
	}
	return nil
}

// cleanFile runs the full pipeline for one file: read, classify, gate,
// transform, backup, rewrite.
func cleanFile(path string, opts engine.Options) reporter.FileReport {
	rep := reporter.FileReport{Path: path, DryRun: dryRun}

	content, err := fileio.ReadFile(path)
	if err != nil {
		rep.Status = reporter.StatusFailed
		rep.Message = err.Error()
		return rep
	}

	result, err := engine.Process(content, opts)
	if err != nil {
		var refusal *engine.RefusalError
		if errors.As(err, &refusal) {
			cls := engine.Classify(content)
			rep.Classification = &cls
			rep.Status = reporter.StatusBlocked
			rep.Message = refusal.Error()
			return rep
		}
		rep.Status = reporter.StatusFailed
		rep.Message = err.Error()
		return rep
	}

	rep.Classification = &result.Classification
	rep.Stats = &result.Stats
	rep.LowConfidence = result.Classification.Confidence < cfg.ConfidenceThreshold

	if dryRun {
		rep.Status = reporter.StatusProcessed
		return rep
	}

	if !noBackup && cfg.Backup {
		backup, err := fileio.WriteBackup(path, content)
		if err != nil {
			rep.Status = reporter.StatusFailed
			rep.Message = err.Error()
			return rep
		}
		rep.BackupPath = backup
	}

	if err := fileio.RewriteInPlace(path, result.Output); err != nil {
		rep.Status = reporter.StatusFailed
		rep.Message = err.Error()
		return rep
	}

	rep.Status = reporter.StatusProcessed
	return rep
}

// resolveFiles turns arguments into absolute paths, trying the text
// directory first for relative names. Without arguments it falls back
// to the interactive picker.
func resolveFiles(args []string, u *ui.UI) ([]string, error) {
	if len(args) == 0 {
		if !u.IsInteractive() {
			return nil, fmt.Errorf("no files given and not running interactively")
		}
		return picker.Select(cfg.TextDir)
	}

	if info, err := os.Stat(cfg.TextDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("text directory not found: %s", cfg.TextDir)
	}

	files := make([]string, 0, len(args))
	for _, arg := range args {
		if filepath.IsAbs(arg) {
			files = append(files, arg)
			continue
		}
		candidate := filepath.Join(cfg.TextDir, arg)
		if _, err := os.Stat(candidate); err == nil {
			files = append(files, candidate)
		} else {
			files = append(files, arg)
		}
	}
	return files, nil
}

func report(u *ui.UI, reports []reporter.FileReport) error {
	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(u.Writer)
	default:
		rep = reporter.NewTerminalReporter(u.Writer, u, verbose)
	}
	return rep.Report(reports)
}
