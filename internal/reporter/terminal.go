package reporter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/utono/bardclean/internal/ui"
)

// TerminalReporter outputs styled results to the terminal
type TerminalReporter struct {
	w       io.Writer
	ui      *ui.UI
	verbose bool
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI, verbose bool) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u, verbose: verbose}
}

// Report outputs per-file results followed by a run summary
func (r *TerminalReporter) Report(reports []FileReport) error {
	for _, report := range reports {
		r.printFile(report)
	}

	if len(reports) > 1 {
		r.printSummary(reports)
	}

	return nil
}

func (r *TerminalReporter) printFile(report FileReport) {
	s := r.ui.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render(filepath.Base(report.Path)))
	fmt.Fprintf(r.w, "  %s\n", s.Path.Render(report.Path))

	if cls := report.Classification; cls != nil {
		fmt.Fprintf(r.w, "  %s %s",
			s.Label.Render("Type:"),
			s.Value.Render(cls.Type.String()))
		fmt.Fprintf(r.w, "  %s %s\n",
			s.Label.Render("Confidence:"),
			s.Value.Render(fmt.Sprintf("%.2f", cls.Confidence)))

		if report.LowConfidence {
			fmt.Fprintf(r.w, "  %s\n", s.Warning.Render(
				fmt.Sprintf("%s Low confidence classification", s.IconWarning)))
		}

		if r.verbose {
			r.printFeatures(report)
		}
	}

	switch report.Status {
	case StatusProcessed:
		label := "Processed"
		if report.DryRun {
			label = "Would process (dry run)"
		}
		fmt.Fprintf(r.w, "  %s\n", s.Success.Render(
			fmt.Sprintf("%s %s", s.IconSuccess, label)))
		if report.Stats != nil {
			r.printStats(report)
		}
		if report.BackupPath != "" {
			fmt.Fprintf(r.w, "  %s %s\n",
				s.Label.Render("Backup:"), s.Path.Render(report.BackupPath))
		}

	case StatusClassified:
		fmt.Fprintf(r.w, "  %s\n", s.Success.Render(
			fmt.Sprintf("%s Processable", s.IconSuccess)))

	case StatusNotProcessable:
		fmt.Fprintf(r.w, "  %s\n", s.Blocked.Render(
			fmt.Sprintf("%s Not processable: %s", s.IconBlocked, report.Message)))

	case StatusBlocked:
		fmt.Fprintf(r.w, "  %s\n", s.Blocked.Render(
			fmt.Sprintf("%s %s", s.IconBlocked, report.Message)))

	case StatusFailed:
		fmt.Fprintf(r.w, "  %s\n", s.Error.Render(
			fmt.Sprintf("%s %s", s.IconError, report.Message)))
	}
}

func (r *TerminalReporter) printFeatures(report FileReport) {
	s := r.ui.Styles
	fs := report.Classification.Features

	fmt.Fprintf(r.w, "  %s\n", s.Label.Render("Features:"))
	fmt.Fprintf(r.w, "    character names:  %d\n", len(fs.CharacterNames))
	if len(fs.CharacterNames) > 0 {
		preview := fs.CharacterNames
		if len(preview) > 5 {
			preview = preview[:5]
		}
		fmt.Fprintf(r.w, "      %s\n", s.Path.Render(strings.Join(preview, ", ")))
	}
	fmt.Fprintf(r.w, "    stage directions: %d\n", fs.StageDirectionCount)
	fmt.Fprintf(r.w, "    act/scene marks:  %d\n", fs.ActSceneCount)
	fmt.Fprintf(r.w, "    quoted dialogue:  %d\n", fs.QuotedDialogueCount)
	fmt.Fprintf(r.w, "    roman numerals:   %d\n", len(fs.RomanNumeralMarkers))
	fmt.Fprintf(r.w, "    narrator tags:    %t\n", fs.HasNarratorTags)
}

func (r *TerminalReporter) printStats(report FileReport) {
	stats := report.Stats

	fmt.Fprintf(r.w, "    Total lines:    %d\n", stats.TotalLines)
	fmt.Fprintf(r.w, "    Dialogue lines: %d\n", stats.DialogueLinesProcessed)
	fmt.Fprintf(r.w, "    Modified:       %d\n", stats.ModifiedLines)
	fmt.Fprintf(r.w, "    Unchanged:      %d\n", stats.UnchangedLines)
	fmt.Fprintf(r.w, "    Skipped:        %d\n", stats.NonDialogueLinesSkipped)

	if r.verbose && stats.Removed.Total() > 0 {
		rm := stats.Removed
		fmt.Fprintf(r.w, "    Removed:        %d commas, %d semicolons, %d colons, %d exclamations, %d quotes, %d dashes\n",
			rm.Commas, rm.Semicolons, rm.Colons, rm.Exclamations, rm.Quotes, rm.Dashes)
	}
}

func (r *TerminalReporter) printSummary(reports []FileReport) {
	s := r.ui.Styles
	summary := ComputeSummary(reports)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render("─────────────────────────────────────"))

	var parts []string
	if summary.Processed > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d processed", summary.Processed)))
	}
	if summary.Classified > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d processable", summary.Classified)))
	}
	if summary.NotProcessable > 0 {
		parts = append(parts, s.Blocked.Render(fmt.Sprintf("%d not processable", summary.NotProcessable)))
	}
	if summary.Blocked > 0 {
		parts = append(parts, s.Blocked.Render(fmt.Sprintf("%d blocked", summary.Blocked)))
	}
	if summary.Failed > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", summary.Failed)))
	}

	fmt.Fprintf(r.w, "%d files: %s\n", summary.Files, strings.Join(parts, ", "))
}
