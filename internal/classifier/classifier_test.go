package classifier

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		features       FeatureSet
		wantType       FileType
		wantConfidence float64
	}{
		{
			name: "play with strong signals",
			features: FeatureSet{
				CharacterNames:      []string{"HAMLET", "HORATIO"},
				StageDirectionCount: 2,
			},
			wantType:       TypePlay,
			wantConfidence: 0.9,
		},
		{
			name: "play with weak signals",
			features: FeatureSet{
				CharacterNames:      []string{"HAMLET"},
				StageDirectionCount: 1,
			},
			wantType:       TypePlay,
			wantConfidence: 0.7,
		},
		{
			name: "sonnet sequence",
			features: FeatureSet{
				RomanNumeralMarkers: []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI"},
			},
			wantType:       TypeSonnet,
			wantConfidence: 0.95,
		},
		{
			name: "short sonnet sequence",
			features: FeatureSet{
				RomanNumeralMarkers: []string{"I", "II", "III"},
			},
			wantType:       TypeSonnet,
			wantConfidence: 0.6,
		},
		{
			name: "narrative poem",
			features: FeatureSet{
				QuotedDialogueCount: 12,
				HasNarratorTags:     true,
				StageDirectionCount: 1,
			},
			wantType:       TypeNarrativePoem,
			wantConfidence: 0.8,
		},
		{
			name:           "lyric poem catch-all",
			features:       FeatureSet{},
			wantType:       TypeLyricPoem,
			wantConfidence: 0.6,
		},
		{
			name: "unknown",
			features: FeatureSet{
				CharacterNames: []string{"HAMLET"},
			},
			wantType:       TypeUnknown,
			wantConfidence: 0.0,
		},
		{
			// Play detection runs before narrative-poem detection, so a
			// play full of quoted lines still classifies as a play.
			name: "play wins over narrative poem signals",
			features: FeatureSet{
				CharacterNames:      []string{"HAMLET", "HORATIO"},
				StageDirectionCount: 3,
				QuotedDialogueCount: 20,
				HasNarratorTags:     true,
			},
			wantType:       TypePlay,
			wantConfidence: 0.9,
		},
		{
			// Sonnet requires the absence of character cues.
			name: "roman numerals with cues do not make a sonnet",
			features: FeatureSet{
				CharacterNames:      []string{"HAMLET"},
				RomanNumeralMarkers: []string{"I", "II"},
			},
			wantType:       TypeUnknown,
			wantConfidence: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.features)
			if got.Type != tt.wantType {
				t.Errorf("Classify() type = %v, want %v", got.Type, tt.wantType)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Classify() confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifySonnetsFile(t *testing.T) {
	// 154 standalone numeral titles, no cues, no stage directions.
	var b strings.Builder
	numerals := []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}
	for i := 0; i < 154; i++ {
		b.WriteString(numerals[i%len(numerals)])
		b.WriteString("\n\nShall I compare thee to a summer's day?\n\n")
	}

	got := Classify(Extract(b.String()))
	if got.Type != TypeSonnet {
		t.Fatalf("type = %v, want %v", got.Type, TypeSonnet)
	}
	if got.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", got.Confidence)
	}
	if len(got.Features.RomanNumeralMarkers) != 154 {
		t.Errorf("markers = %d, want 154", len(got.Features.RomanNumeralMarkers))
	}
}

func TestFileTypeString(t *testing.T) {
	tests := []struct {
		fileType FileType
		expected string
	}{
		{TypePlay, "play"},
		{TypeNarrativePoem, "narrative_poem"},
		{TypeSonnet, "sonnet"},
		{TypeLyricPoem, "lyric_poem"},
		{TypeUnknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.fileType.String(); got != tt.expected {
				t.Errorf("FileType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseFileType(t *testing.T) {
	for _, typ := range []FileType{TypePlay, TypeNarrativePoem, TypeSonnet, TypeLyricPoem, TypeUnknown} {
		got, ok := ParseFileType(typ.String())
		if !ok || got != typ {
			t.Errorf("ParseFileType(%q) = %v, %v", typ.String(), got, ok)
		}
	}

	if _, ok := ParseFileType("ballad"); ok {
		t.Error("ParseFileType accepted an unrecognized name")
	}
}
