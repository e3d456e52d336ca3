package canvas

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    float64
		expected []string
	}{
		{
			name:     "fits on one line",
			text:     "short text",
			width:    20,
			expected: []string{"short text"},
		},
		{
			name:     "breaks on whitespace",
			text:     "the quick brown fox jumps",
			width:    10,
			expected: []string{"the quick", "brown fox", "jumps"},
		},
		{
			name:     "collapses repeated whitespace",
			text:     "a    b\tc",
			width:    10,
			expected: []string{"a b c"},
		},
		{
			name:     "long word is never split",
			text:     "tiny extraordinarily tiny",
			width:    8,
			expected: []string{"tiny", "extraordinarily", "tiny"},
		},
		{
			name:     "explicit newline starts a new line",
			text:     "one\n\ntwo",
			width:    20,
			expected: []string{"one", "", "two"},
		},
		{
			name:     "blank input yields nothing",
			text:     "   \n ",
			width:    20,
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WrapWords(tc.text, tc.width, runeWidth))
		})
	}
}

func TestWrapWords_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	vocabulary := strings.Fields("calm sleep mood journal breathing anxiety reflection walk gratitude a an of therapy")

	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(40)
		words := make([]string, n)
		for j := range words {
			words[j] = vocabulary[rng.Intn(len(vocabulary))]
		}
		text := strings.Join(words, " ")
		width := float64(5 + rng.Intn(40))

		first := WrapWords(text, width, runeWidth)
		second := WrapWords(text, width, runeWidth)
		require.Equal(t, first, second, "wrapping must be stable")

		var rejoined []string
		for _, line := range first {
			if runeWidth(line) > width {
				assert.NotContains(t, line, " ", "only a single over-long word may exceed the width")
			}
			rejoined = append(rejoined, strings.Fields(line)...)
		}
		assert.Equal(t, strings.Fields(text), rejoined, "no word may be split or lost")
	}
}

func TestRecorder_MeasureWrappedLinesUsesCurrentFont(t *testing.T) {
	r := NewRecorder()
	text := "steady progress with daily journaling and breathing practice"

	r.SetFont(Font{Family: "Helvetica", Size: 8})
	small := r.MeasureWrappedLines(text, 40)
	r.SetFont(Font{Family: "Helvetica", Size: 16})
	large := r.MeasureWrappedLines(text, 40)

	assert.Greater(t, len(large), len(small))
	for _, line := range large {
		if strings.Contains(line, " ") {
			assert.LessOrEqual(t, r.StringWidth(line), 40.0)
		}
	}
}
