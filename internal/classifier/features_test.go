package classifier

import (
	"reflect"
	"strings"
	"testing"
)

func TestIsCharacterCue(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"all caps name", "HAMLET.", true},
		{"abbreviated name", "Ber.", true},
		{"multi word name", "FIRST WITCH.", true},
		{"indented name", "  TROILUS.", true},
		{"no trailing period", "HAMLET", false},
		{"act heading", "ACT I.", false},
		{"scene heading", "SCENE II.", false},
		{"mixed case scene", "Scene III.", false},
		{"lowercase start", "hamlet.", false},
		{"too long", "A VERY LONG LINE THAT ENDS IN A PERIOD BUT IS PROSE.", false},
		{"contains digits", "HAMLET 2.", false},
		{"blank", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCharacterCue(tt.line); got != tt.expected {
				t.Errorf("IsCharacterCue(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestIsStageDirection(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"simple direction", "[Exit.]", true},
		{"long direction", "[Enter HAMLET and HORATIO, at a distance.]", true},
		{"indented direction", "    [Flourish.]", true},
		{"unclosed bracket", "[Exit.", false},
		{"trailing text", "[Exit.] He leaves.", false},
		{"plain text", "To be, or not to be.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStageDirection(tt.line); got != tt.expected {
				t.Errorf("IsStageDirection(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	content := strings.Join([]string{
		"ACT I.",
		"SCENE I. Elsinore.",
		"",
		"HAMLET.",
		"Call here my varlet; I'll unarm again.",
		"",
		"[Enter HORATIO.]",
		"",
		"HORATIO.",
		"Who's there?",
		"",
		"HAMLET.",
		"Nay, answer me.",
	}, "\n")

	fs := Extract(content)

	wantNames := []string{"HAMLET", "HORATIO"}
	if !reflect.DeepEqual(fs.CharacterNames, wantNames) {
		t.Errorf("CharacterNames = %v, want %v", fs.CharacterNames, wantNames)
	}
	if fs.StageDirectionCount != 1 {
		t.Errorf("StageDirectionCount = %d, want 1", fs.StageDirectionCount)
	}
	if fs.ActSceneCount != 2 {
		t.Errorf("ActSceneCount = %d, want 2", fs.ActSceneCount)
	}
	if fs.QuotedDialogueCount != 0 {
		t.Errorf("QuotedDialogueCount = %d, want 0", fs.QuotedDialogueCount)
	}
	if fs.HasNarratorTags {
		t.Error("HasNarratorTags = true, want false")
	}
}

func TestExtractCharacterNamesKeepFirstAppearanceOrder(t *testing.T) {
	content := "ZEBRA.\nsome line\nALPHA.\nsome line\nZEBRA.\n"

	fs := Extract(content)

	want := []string{"ZEBRA", "ALPHA"}
	if !reflect.DeepEqual(fs.CharacterNames, want) {
		t.Errorf("CharacterNames = %v, want %v", fs.CharacterNames, want)
	}
}

func TestExtractRomanNumerals(t *testing.T) {
	content := "I\n\nFrom fairest creatures we desire increase,\n\nII\n\nWhen forty winters shall besiege thy brow,\n\nII\n"

	fs := Extract(content)

	// Duplicates are kept in order of appearance.
	want := []string{"I", "II", "II"}
	if !reflect.DeepEqual(fs.RomanNumeralMarkers, want) {
		t.Errorf("RomanNumeralMarkers = %v, want %v", fs.RomanNumeralMarkers, want)
	}
}

func TestExtractRomanNumeralIgnoresEmbeddedNumerals(t *testing.T) {
	fs := Extract("He gave IV reasons for it\nIV\n")

	want := []string{"IV"}
	if !reflect.DeepEqual(fs.RomanNumeralMarkers, want) {
		t.Errorf("RomanNumeralMarkers = %v, want %v", fs.RomanNumeralMarkers, want)
	}
}

func TestExtractNarratorTags(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"quoth", "'Thou art no man' quoth she, 'although'", true},
		{"quoth capitalized", "Quoth he, 'I am no man'", true},
		{"thus she", "Thus she replies unto the silent night", true},
		{"thus he", "and thus he spoke", true},
		{"absent", "From fairest creatures we desire increase", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := Extract(tt.content)
			if fs.HasNarratorTags != tt.expected {
				t.Errorf("HasNarratorTags = %v, want %v", fs.HasNarratorTags, tt.expected)
			}
		})
	}
}

func TestExtractQuotedDialogue(t *testing.T) {
	content := "'Fondling,' she saith, 'since I have hemm'd thee here\n  'Within the circuit of this ivory pale,\nplain narration line\n"

	fs := Extract(content)

	if fs.QuotedDialogueCount != 2 {
		t.Errorf("QuotedDialogueCount = %d, want 2", fs.QuotedDialogueCount)
	}
}

func TestExtractIsPure(t *testing.T) {
	content := "HAMLET.\n[Exit.]\nACT I.\n'Quoth she\n"

	first := Extract(content)
	second := Extract(content)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %+v vs %+v", first, second)
	}
}
