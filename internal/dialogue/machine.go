package dialogue

import (
	"strings"
	"unicode"

	"github.com/utono/bardclean/internal/classifier"
)

// LineRole is the transient per-line classification made during a
// traversal. Roles are computed, acted on, and discarded.
type LineRole int

const (
	// RoleDialogue is body text attributed to a speaker.
	RoleDialogue LineRole = iota
	// RoleCharacterCue identifies the next speaker.
	RoleCharacterCue
	// RoleStageDirection is a bracket-enclosed production instruction.
	RoleStageDirection
	// RoleBlank is an empty or whitespace-only line.
	RoleBlank
	// RoleMetadata covers headings, cast lists and other front matter.
	RoleMetadata
)

func (r LineRole) String() string {
	switch r {
	case RoleCharacterCue:
		return "character_cue"
	case RoleStageDirection:
		return "stage_direction"
	case RoleBlank:
		return "blank"
	case RoleMetadata:
		return "metadata"
	default:
		return "dialogue"
	}
}

// State is the dialogue cursor state during a traversal.
type State int

const (
	// StateInitial means the cursor is outside any dialogue block.
	StateInitial State = iota
	// StateInDialogue means a character cue has opened a dialogue block.
	StateInDialogue
)

// Machine walks a file line by line, tracking whether the cursor is
// inside a dialogue block and rewriting dialogue lines. One Machine
// serves exactly one file traversal; the caller owns the Stats.
type Machine struct {
	state State
	stats *Stats
}

// NewMachine creates a traversal starting in StateInitial, accumulating
// into the given Stats.
func NewMachine(stats *Stats) *Machine {
	return &Machine{state: StateInitial, stats: stats}
}

// State returns the current dialogue state.
func (m *Machine) State() State {
	return m.state
}

// Role classifies a line relative to the current state. The metadata
// heuristic for cast-list lines (", " in the line) only applies outside
// dialogue, so the role of a line can depend on the state.
func (m *Machine) Role(line string) LineRole {
	stripped := strings.TrimSpace(line)

	if stripped == "" {
		return RoleBlank
	}

	if classifier.IsStageDirection(line) {
		return RoleStageDirection
	}

	if classifier.IsCharacterCue(line) {
		return RoleCharacterCue
	}

	if m.isMetadata(stripped) {
		return RoleMetadata
	}

	return RoleDialogue
}

// isMetadata recognizes titles, ACT/SCENE headers and cast-list lines.
// The cast-list check (", " present) is a heuristic carried over from
// the original tool and deliberately only applies outside dialogue.
func (m *Machine) isMetadata(stripped string) bool {
	if isAllCaps(stripped) && len(stripped) > 1 {
		return true
	}

	for _, prefix := range []string{"ACT ", "SCENE", "Scene ", "PROLOGUE", "EPILOGUE"} {
		if strings.HasPrefix(stripped, prefix) {
			return true
		}
	}

	if strings.Contains(stripped, ", ") && m.state != StateInDialogue {
		return true
	}

	return false
}

// Feed processes one line and returns the (possibly rewritten) output
// line plus whether it was rewritten. Only dialogue lines reached while
// in dialogue state are rewritten; everything else passes through
// unchanged and counts as skipped.
func (m *Machine) Feed(line string) (string, bool) {
	m.stats.TotalLines++

	switch m.Role(line) {
	case RoleBlank, RoleStageDirection, RoleMetadata:
		m.state = StateInitial
		return m.skip(line)

	case RoleCharacterCue:
		m.state = StateInDialogue
		return m.skip(line)

	default:
		if m.state != StateInDialogue {
			// Body text before any cue is never dialogue.
			return m.skip(line)
		}

		out, removed := Transform(line)
		m.stats.DialogueLinesProcessed++
		if removed.Total() > 0 {
			m.stats.ModifiedLines++
		} else {
			m.stats.UnchangedLines++
		}
		m.stats.Removed.Add(removed)
		return out, true
	}
}

func (m *Machine) skip(line string) (string, bool) {
	m.stats.NonDialogueLinesSkipped++
	return line, false
}

// isAllCaps reports whether the string has at least one cased letter
// and no lowercase ones.
func isAllCaps(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
