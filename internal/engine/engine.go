// Package engine glues classification and dialogue rewriting into a
// single pipeline over one file's in-memory text. It performs no file
// I/O, printing or process control; callers wrap it with whatever
// plumbing they need.
package engine

import (
	"fmt"
	"strings"

	"github.com/utono/bardclean/internal/classifier"
	"github.com/utono/bardclean/internal/dialogue"
)

// Options controls a single Process call.
type Options struct {
	// TypeOverride bypasses the classifier's verdict for the policy
	// gate. The classification result is still computed and reported.
	TypeOverride *classifier.FileType

	// Force processes pure-poetry types (sonnet, lyric poem) that are
	// refused by default. It does not override TypeUnknown.
	Force bool
}

// Result is the outcome of processing one file.
type Result struct {
	Classification classifier.Result

	// Lines is the rewritten line sequence.
	Lines []string

	// Output is the rewritten text, newline-joined, preserving the
	// input's trailing newline if it had one.
	Output string

	Stats dialogue.Stats
}

// RefusalError signals that a file was not processed by policy rather
// than by fault. Callers map it to a dedicated status instead of
// treating it as failure.
type RefusalError struct {
	Type       classifier.FileType
	Confidence float64

	// Forceable is true when the Force option would have allowed
	// processing. Unknown files are never forceable.
	Forceable bool
}

func (e *RefusalError) Error() string {
	if !e.Forceable {
		return fmt.Sprintf("cannot process %s file (confidence %.2f): no processing mode defined", e.Type, e.Confidence)
	}
	return fmt.Sprintf("refusing to process %s file (confidence %.2f): pure poetry is protected, use force to override", e.Type, e.Confidence)
}

// Classify extracts features from content and classifies it.
func Classify(content string) classifier.Result {
	return classifier.Classify(classifier.Extract(content))
}

// Process classifies content, applies the safety gate, and rewrites
// dialogue lines. On refusal it returns a *RefusalError carrying the
// detected type and confidence.
func Process(content string, opts Options) (*Result, error) {
	cls := Classify(content)

	effective := cls.Type
	if opts.TypeOverride != nil {
		effective = *opts.TypeOverride
	}

	if err := CheckPolicy(effective, cls.Confidence, opts.Force); err != nil {
		return nil, err
	}

	lines, trailingNewline := splitLines(content)

	result := &Result{Classification: cls, Lines: make([]string, 0, len(lines))}
	machine := dialogue.NewMachine(&result.Stats)

	for _, line := range lines {
		out, _ := machine.Feed(line)
		result.Lines = append(result.Lines, out)
	}

	result.Output = strings.Join(result.Lines, "\n")
	if trailingNewline {
		result.Output += "\n"
	}

	return result, nil
}

// CheckPolicy applies the safety gate: pure poetry needs force,
// unknown is never processable. A nil return means processing may
// proceed.
func CheckPolicy(t classifier.FileType, confidence float64, force bool) error {
	switch t {
	case classifier.TypeUnknown:
		return &RefusalError{Type: t, Confidence: confidence, Forceable: false}
	case classifier.TypeSonnet, classifier.TypeLyricPoem:
		if !force {
			return &RefusalError{Type: t, Confidence: confidence, Forceable: true}
		}
	}
	return nil
}

// splitLines splits newline-delimited text into lines, reporting
// whether the text ended with a newline so Output can preserve it.
func splitLines(content string) ([]string, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		return lines[:len(lines)-1], true
	}
	return lines, false
}
