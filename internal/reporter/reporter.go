package reporter

import (
	"github.com/utono/bardclean/internal/classifier"
	"github.com/utono/bardclean/internal/dialogue"
)

// Status is the per-file outcome of a run.
type Status int

const (
	// StatusProcessed means the file was cleaned (or would be, in dry-run).
	StatusProcessed Status = iota
	// StatusClassified means classify-only mode found a processable type.
	StatusClassified
	// StatusNotProcessable means classify-only mode found a type the
	// cleaner would refuse.
	StatusNotProcessable
	// StatusBlocked means cleaning was refused by the safety policy.
	StatusBlocked
	// StatusFailed means a genuine error occurred.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusClassified:
		return "classified"
	case StatusNotProcessable:
		return "not_processable"
	case StatusBlocked:
		return "blocked"
	default:
		return "failed"
	}
}

// FileReport is everything the reporting layer knows about one file.
type FileReport struct {
	Path   string
	Status Status

	// Classification is set whenever the file could be read.
	Classification *classifier.Result

	// Stats is set when the file was processed.
	Stats *dialogue.Stats

	// Message carries the refusal or error text for non-success statuses.
	Message string

	// BackupPath is the backup file written before rewriting, if any.
	BackupPath string

	// DryRun marks results that were computed but not written back.
	DryRun bool

	// LowConfidence marks classifications below the configured threshold.
	LowConfidence bool
}

// Summary aggregates outcomes across one run.
type Summary struct {
	Files          int
	Processed      int
	Classified     int
	NotProcessable int
	Blocked        int
	Failed         int
}

// ComputeSummary tallies reports into a Summary.
func ComputeSummary(reports []FileReport) Summary {
	s := Summary{Files: len(reports)}
	for _, r := range reports {
		switch r.Status {
		case StatusProcessed:
			s.Processed++
		case StatusClassified:
			s.Classified++
		case StatusNotProcessable:
			s.NotProcessable++
		case StatusBlocked:
			s.Blocked++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// ExitCode maps a run's outcomes to the process exit code: 1 for any
// failure, 4 when cleaning was blocked by policy, 5 when classify-only
// mode found a non-processable file, 0 otherwise.
func ExitCode(reports []FileReport) int {
	s := ComputeSummary(reports)
	switch {
	case s.Failed > 0:
		return 1
	case s.Blocked > 0:
		return 4
	case s.NotProcessable > 0:
		return 5
	default:
		return 0
	}
}

// Reporter defines the interface for outputting run results
type Reporter interface {
	// Report outputs the results for all files in one run
	Report(reports []FileReport) error
}
