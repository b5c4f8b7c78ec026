package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fontSize float64
		span     float64
		want     []string
	}{
		{
			// charWidth = 10 * 0.5 * 0.3528 = 1.764mm, so 9mm holds 5 chars
			name:     "greedy packing at the budget boundary",
			text:     "a b c d e f g",
			fontSize: 10,
			span:     9,
			want:     []string{"a b", "c d", "e f", "g"},
		},
		{
			name:     "short text stays a single line",
			text:     "bonjour",
			fontSize: 12,
			span:     60,
			want:     []string{"bonjour"},
		},
		{
			// 60mm at 18pt holds 18 chars; the word is longer and must not
			// be split, so it overflows on its own line
			name:     "single long word overflows unsplit",
			text:     "INTERNATIONALIZATION",
			fontSize: 18,
			span:     60,
			want:     []string{"INTERNATIONALIZATION"},
		},
		{
			name:     "empty text is a single empty line",
			text:     "",
			fontSize: 12,
			span:     60,
			want:     []string{""},
		},
		{
			name:     "zero span degrades to one word per line",
			text:     "alpha beta",
			fontSize: 12,
			span:     0,
			want:     []string{"alpha", "beta"},
		},
		{
			name:     "whitespace-only text with no budget",
			text:     "   ",
			fontSize: 10,
			span:     0,
			want:     []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.fontSize, tt.span)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q, %v, %v) mismatch (-want +got):\n%s",
					tt.text, tt.fontSize, tt.span, diff)
			}

			// Re-wrapping the joined result under the same parameters must
			// reproduce the same line boundaries.
			rejoined := strings.Join(got, " ")
			again := Wrap(rejoined, tt.fontSize, tt.span)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("Wrap is not a stable point (-first +second):\n%s", diff)
			}
		})
	}
}

func TestWrapNeverSplitsWords(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"supercalifragilisticexpialidocious and more",
		"a bb ccc dddd eeeee",
	}

	for _, text := range texts {
		for _, span := range []float64{0, 5, 20, 60, 200} {
			lines := Wrap(text, 12, span)
			if len(lines) == 0 {
				t.Fatalf("Wrap(%q, 12, %v) returned no lines", text, span)
			}

			original := strings.Fields(text)
			var wrapped []string
			for _, line := range lines {
				wrapped = append(wrapped, strings.Fields(line)...)
			}
			if diff := cmp.Diff(original, wrapped); diff != "" {
				t.Errorf("Wrap(%q, 12, %v) altered words (-want +got):\n%s", text, span, diff)
			}
		}
	}
}
