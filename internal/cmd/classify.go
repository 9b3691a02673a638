package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/utono/bardclean/internal/engine"
	"github.com/utono/bardclean/internal/fileio"
	"github.com/utono/bardclean/internal/reporter"
	"github.com/utono/bardclean/internal/ui"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [files...]",
	Short: "Classify files without modifying them",
	Long: `Detect the structural type of each file (play, narrative poem,
sonnet, lyric poem) and report the type, confidence and extracted
features. No file is ever written.

The exit code is 5 when any file would be refused by the cleaning
policy, letting scripts validate before processing.

Examples:
  bardclean classify hamlet_gut.txt
  bardclean classify --format json sonnets_gut.txt`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runClassify,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	u := ui.New(os.Stdout, os.Stderr, format)

	files, err := resolveFiles(args, u)
	if err != nil {
		return err
	}

	reports := make([]reporter.FileReport, 0, len(files))
	for _, path := range files {
		reports = append(reports, classifyFile(path))
	}

	if err := report(u, reports); err != nil {
		return err
	}

	if code := reporter.ExitCode(reports); code != 0 {
		exitCode = code
	}
	return nil
}

func classifyFile(path string) reporter.FileReport {
	rep := reporter.FileReport{Path: path}

	content, err := fileio.ReadFile(path)
	if err != nil {
		rep.Status = reporter.StatusFailed
		rep.Message = err.Error()
		return rep
	}

	cls := engine.Classify(content)
	rep.Classification = &cls
	rep.LowConfidence = cls.Confidence < cfg.ConfidenceThreshold

	if err := engine.CheckPolicy(cls.Type, cls.Confidence, false); err != nil {
		rep.Status = reporter.StatusNotProcessable
		rep.Message = fmt.Sprintf("%s files are not processed by default", cls.Type)
		return rep
	}

	rep.Status = reporter.StatusClassified
	return rep
}
