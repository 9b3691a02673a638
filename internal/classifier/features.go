package classifier

import (
	"regexp"
	"strings"
)

// FeatureSet holds the structural signals extracted from one file.
// It is built once per file and not mutated afterwards.
type FeatureSet struct {
	// CharacterNames lists speaker cues in order of first appearance,
	// without the trailing period.
	CharacterNames []string

	// StageDirectionCount is the number of bracket-enclosed lines.
	StageDirectionCount int

	// ActSceneCount is the number of ACT/SCENE marker lines.
	ActSceneCount int

	// QuotedDialogueCount is the number of lines opening with an
	// apostrophe followed by an uppercase letter.
	QuotedDialogueCount int

	// RomanNumeralMarkers lists standalone Roman-numeral title lines in
	// order of appearance. Duplicates are kept.
	RomanNumeralMarkers []string

	// HasNarratorTags is true when the text contains narrator speech
	// attributions ("quoth", "thus she", "thus he").
	HasNarratorTags bool
}

var (
	// Character name cue: capitalized words ending in a period.
	// Matches TROILUS., Ber., PANDARUS., etc.
	charNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z\s]*\.$`)

	// Stage direction: the whole line enclosed in brackets.
	stageDirPattern = regexp.MustCompile(`^\[.*\]$`)

	// ACT/SCENE structural marker at the start of a line.
	actScenePattern = regexp.MustCompile(`^(ACT|SCENE)\b`)

	// Quoted dialogue opener used in narrative poems:
	// leading whitespace, apostrophe, uppercase letter.
	quotedDialoguePattern = regexp.MustCompile(`^\s*'[A-Z]`)

	// Standalone Roman numeral title line (sonnet numbering).
	romanNumeralPattern = regexp.MustCompile(`^[IVXLCDM]+$`)
)

// narratorTags are searched case-insensitively across the whole text.
var narratorTags = []string{"quoth", "thus she", "thus he"}

// IsCharacterCue reports whether a line is a character name cue.
// Cues are short capitalized lines ending in a period, excluding
// ACT/SCENE headings.
func IsCharacterCue(line string) bool {
	stripped := strings.TrimSpace(line)

	if !charNamePattern.MatchString(stripped) {
		return false
	}

	if strings.HasPrefix(stripped, "ACT ") ||
		strings.HasPrefix(stripped, "SCENE") ||
		strings.HasPrefix(stripped, "Scene ") {
		return false
	}

	// Character names are short; longer matches are headings or prose.
	return len(stripped) <= 30
}

// IsStageDirection reports whether a line is a bracket-enclosed stage
// direction.
func IsStageDirection(line string) bool {
	return stageDirPattern.MatchString(strings.TrimSpace(line))
}

// Extract scans the full text of one file and produces its FeatureSet.
// It is a pure function of the content: identical input yields an
// identical FeatureSet.
func Extract(content string) FeatureSet {
	var fs FeatureSet

	lower := strings.ToLower(content)
	for _, tag := range narratorTags {
		if strings.Contains(lower, tag) {
			fs.HasNarratorTags = true
			break
		}
	}

	seen := make(map[string]bool)

	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)

		if IsCharacterCue(line) {
			name := strings.TrimSuffix(stripped, ".")
			if !seen[name] {
				seen[name] = true
				fs.CharacterNames = append(fs.CharacterNames, name)
			}
		}

		if IsStageDirection(line) {
			fs.StageDirectionCount++
		}

		if actScenePattern.MatchString(stripped) {
			fs.ActSceneCount++
		}

		if quotedDialoguePattern.MatchString(line) {
			fs.QuotedDialogueCount++
		}

		if stripped != "" && romanNumeralPattern.MatchString(stripped) {
			fs.RomanNumeralMarkers = append(fs.RomanNumeralMarkers, stripped)
		}
	}

	return fs
}
