package reporter

import (
	"encoding/json"
	"io"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Files    []JSONFile  `json:"files"`
	Summary  JSONSummary `json:"summary"`
	ExitCode int         `json:"exit_code"`
}

// JSONFile represents one file's result in JSON format
type JSONFile struct {
	File          string        `json:"file"`
	Status        string        `json:"status"`
	FileType      string        `json:"file_type,omitempty"`
	Confidence    *float64      `json:"confidence,omitempty"`
	LowConfidence bool          `json:"low_confidence,omitempty"`
	Features      *JSONFeatures `json:"features,omitempty"`
	Stats         *JSONStats    `json:"stats,omitempty"`
	Message       string        `json:"message,omitempty"`
	Backup        string        `json:"backup,omitempty"`
	DryRun        bool          `json:"dry_run,omitempty"`
}

// JSONFeatures mirrors the extracted FeatureSet
type JSONFeatures struct {
	CharacterNames      []string `json:"character_names"`
	StageDirections     int      `json:"stage_directions"`
	ActSceneMarkers     int      `json:"act_scene_markers"`
	QuotedDialogue      int      `json:"quoted_dialogue"`
	RomanNumeralMarkers []string `json:"roman_numeral_markers"`
	HasNarratorTags     bool     `json:"has_narrator_tags"`
}

// JSONStats mirrors the traversal statistics
type JSONStats struct {
	TotalLines              int `json:"total_lines"`
	DialogueLinesProcessed  int `json:"dialogue_lines_processed"`
	ModifiedLines           int `json:"modified_lines"`
	UnchangedLines          int `json:"unchanged_lines"`
	NonDialogueLinesSkipped int `json:"non_dialogue_lines_skipped"`
	Removed                 struct {
		Commas       int `json:"commas"`
		Semicolons   int `json:"semicolons"`
		Colons       int `json:"colons"`
		Exclamations int `json:"exclamations"`
		Quotes       int `json:"quotes"`
		Dashes       int `json:"dashes"`
	} `json:"removed"`
}

// JSONSummary aggregates the run
type JSONSummary struct {
	Files          int `json:"files"`
	Processed      int `json:"processed"`
	Classified     int `json:"classified"`
	NotProcessable int `json:"not_processable"`
	Blocked        int `json:"blocked"`
	Failed         int `json:"failed"`
}

// Report outputs all file results as a single JSON document
func (r *JSONReporter) Report(reports []FileReport) error {
	summary := ComputeSummary(reports)
	output := JSONOutput{
		Files: make([]JSONFile, 0, len(reports)),
		Summary: JSONSummary{
			Files:          summary.Files,
			Processed:      summary.Processed,
			Classified:     summary.Classified,
			NotProcessable: summary.NotProcessable,
			Blocked:        summary.Blocked,
			Failed:         summary.Failed,
		},
		ExitCode: ExitCode(reports),
	}

	for _, report := range reports {
		jf := JSONFile{
			File:          report.Path,
			Status:        report.Status.String(),
			Message:       report.Message,
			Backup:        report.BackupPath,
			DryRun:        report.DryRun,
			LowConfidence: report.LowConfidence,
		}

		if cls := report.Classification; cls != nil {
			confidence := cls.Confidence
			jf.FileType = cls.Type.String()
			jf.Confidence = &confidence
			jf.Features = &JSONFeatures{
				CharacterNames:      cls.Features.CharacterNames,
				StageDirections:     cls.Features.StageDirectionCount,
				ActSceneMarkers:     cls.Features.ActSceneCount,
				QuotedDialogue:      cls.Features.QuotedDialogueCount,
				RomanNumeralMarkers: cls.Features.RomanNumeralMarkers,
				HasNarratorTags:     cls.Features.HasNarratorTags,
			}
		}

		if stats := report.Stats; stats != nil {
			js := &JSONStats{
				TotalLines:              stats.TotalLines,
				DialogueLinesProcessed:  stats.DialogueLinesProcessed,
				ModifiedLines:           stats.ModifiedLines,
				UnchangedLines:          stats.UnchangedLines,
				NonDialogueLinesSkipped: stats.NonDialogueLinesSkipped,
			}
			js.Removed.Commas = stats.Removed.Commas
			js.Removed.Semicolons = stats.Removed.Semicolons
			js.Removed.Colons = stats.Removed.Colons
			js.Removed.Exclamations = stats.Removed.Exclamations
			js.Removed.Quotes = stats.Removed.Quotes
			js.Removed.Dashes = stats.Removed.Dashes
			jf.Stats = js
		}

		output.Files = append(output.Files, jf)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
