package classifier

// FileType is the structural genre of a literary text file.
type FileType int

const (
	// TypeUnknown is for files matching no classification rule.
	TypeUnknown FileType = iota
	// TypePlay is dramatic text with character cues and stage directions.
	TypePlay
	// TypeNarrativePoem is verse narrative with quoted, narrator-attributed speech.
	TypeNarrativePoem
	// TypeSonnet is a sonnet sequence with Roman-numeral title lines.
	TypeSonnet
	// TypeLyricPoem is pure verse without any of the other positive signals.
	TypeLyricPoem
)

func (t FileType) String() string {
	switch t {
	case TypePlay:
		return "play"
	case TypeNarrativePoem:
		return "narrative_poem"
	case TypeSonnet:
		return "sonnet"
	case TypeLyricPoem:
		return "lyric_poem"
	default:
		return "unknown"
	}
}

// ParseFileType maps a type name back to its FileType. It returns
// TypeUnknown, false for unrecognized names.
func ParseFileType(s string) (FileType, bool) {
	switch s {
	case "play":
		return TypePlay, true
	case "narrative_poem":
		return TypeNarrativePoem, true
	case "sonnet":
		return TypeSonnet, true
	case "lyric_poem":
		return TypeLyricPoem, true
	case "unknown":
		return TypeUnknown, true
	}
	return TypeUnknown, false
}

// Result is the verdict for one file: the detected type, a confidence
// score in [0,1], and the features the decision was based on.
type Result struct {
	Type       FileType
	Confidence float64
	Features   FeatureSet
}

// Classify maps a FeatureSet to a classification verdict. It is
// deterministic and total: every FeatureSet yields some type, falling
// back to TypeUnknown.
//
// Rules are checked in priority order. Play detection runs before
// narrative-poem detection because a play can incidentally contain
// quoted-dialogue-looking lines. Lyric poem is the widest catch-all
// and is checked last.
func Classify(fs FeatureSet) Result {
	switch {
	case len(fs.CharacterNames) > 0 && fs.StageDirectionCount > 0:
		confidence := 0.7
		if len(fs.CharacterNames) >= 2 && fs.StageDirectionCount >= 2 {
			confidence = 0.9
		}
		return Result{Type: TypePlay, Confidence: confidence, Features: fs}

	case len(fs.RomanNumeralMarkers) > 0 && len(fs.CharacterNames) == 0:
		confidence := 0.6
		if len(fs.RomanNumeralMarkers) > 10 {
			confidence = 0.95
		}
		return Result{Type: TypeSonnet, Confidence: confidence, Features: fs}

	case fs.QuotedDialogueCount > 0 && fs.HasNarratorTags:
		return Result{Type: TypeNarrativePoem, Confidence: 0.8, Features: fs}

	case len(fs.CharacterNames) == 0 && fs.StageDirectionCount == 0:
		return Result{Type: TypeLyricPoem, Confidence: 0.6, Features: fs}

	default:
		return Result{Type: TypeUnknown, Confidence: 0.0, Features: fs}
	}
}
