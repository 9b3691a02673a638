package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/utono/bardclean/internal/classifier"
	"github.com/utono/bardclean/internal/dialogue"
)

func TestComputeSummary(t *testing.T) {
	reports := []FileReport{
		{Status: StatusProcessed},
		{Status: StatusProcessed},
		{Status: StatusBlocked},
		{Status: StatusFailed},
		{Status: StatusClassified},
		{Status: StatusNotProcessable},
	}

	s := ComputeSummary(reports)

	if s.Files != 6 {
		t.Errorf("Files = %d, want 6", s.Files)
	}
	if s.Processed != 2 || s.Blocked != 1 || s.Failed != 1 || s.Classified != 1 || s.NotProcessable != 1 {
		t.Errorf("summary = %+v", s)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		expected int
	}{
		{"all processed", []Status{StatusProcessed, StatusProcessed}, 0},
		{"all classified", []Status{StatusClassified}, 0},
		{"blocked", []Status{StatusProcessed, StatusBlocked}, 4},
		{"not processable", []Status{StatusClassified, StatusNotProcessable}, 5},
		{"failure wins over blocked", []Status{StatusBlocked, StatusFailed}, 1},
		{"blocked wins over not processable", []Status{StatusNotProcessable, StatusBlocked}, 4},
		{"empty run", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := make([]FileReport, 0, len(tt.statuses))
			for _, s := range tt.statuses {
				reports = append(reports, FileReport{Status: s})
			}
			if got := ExitCode(reports); got != tt.expected {
				t.Errorf("ExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusProcessed, "processed"},
		{StatusClassified, "classified"},
		{StatusNotProcessable, "not_processable"},
		{StatusBlocked, "blocked"},
		{StatusFailed, "failed"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("String() = %v, want %v", got, tt.expected)
		}
	}
}

func TestJSONReporter(t *testing.T) {
	cls := classifier.Result{
		Type:       classifier.TypePlay,
		Confidence: 0.9,
		Features: classifier.FeatureSet{
			CharacterNames:      []string{"HAMLET", "HORATIO"},
			StageDirectionCount: 2,
		},
	}
	stats := dialogue.Stats{
		TotalLines:              10,
		DialogueLinesProcessed:  4,
		ModifiedLines:           3,
		UnchangedLines:          1,
		NonDialogueLinesSkipped: 6,
		Removed:                 dialogue.Removals{Semicolons: 2, Commas: 5},
	}

	reports := []FileReport{
		{
			Path:           "/texts/hamlet_gut.txt",
			Status:         StatusProcessed,
			Classification: &cls,
			Stats:          &stats,
			BackupPath:     "/texts/hamlet_gut.txt.bak",
		},
		{
			Path:    "/texts/sonnets_gut.txt",
			Status:  StatusBlocked,
			Message: "pure poetry is protected",
		},
	}

	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(reports); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var output JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if output.ExitCode != 4 {
		t.Errorf("exit_code = %d, want 4", output.ExitCode)
	}
	if len(output.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(output.Files))
	}

	first := output.Files[0]
	if first.FileType != "play" || first.Confidence == nil || *first.Confidence != 0.9 {
		t.Errorf("first file = %+v", first)
	}
	if first.Stats == nil || first.Stats.TotalLines != 10 || first.Stats.Removed.Semicolons != 2 {
		t.Errorf("first stats = %+v", first.Stats)
	}

	second := output.Files[1]
	if second.Status != "blocked" || second.FileType != "" {
		t.Errorf("second file = %+v", second)
	}
	if output.Summary.Processed != 1 || output.Summary.Blocked != 1 {
		t.Errorf("summary = %+v", output.Summary)
	}
}
