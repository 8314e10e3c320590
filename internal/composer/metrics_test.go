package composer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountCharacters(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"multibyte runes count once", "héllo wörld", 11},
		{"emoji", "🚀🚀🚀", 3},
		{"whitespace only", "   \t\n", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountCharacters(tt.caption))
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \t\n  ", 0},
		{"single word", "hello", 1},
		{"multiple spaces collapse", "hello    world", 2},
		{"leading and trailing whitespace", "  hello world  ", 2},
		{"newlines and tabs split", "one\ttwo\nthree", 3},
		{"hashtags are words too", "#a #b #c", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.caption))
		})
	}
}

func TestCountWordsZeroIffTrimmedEmpty(t *testing.T) {
	captions := []string{"", " ", "\n\t ", "a", " a ", "#tag", "two words"}
	for _, caption := range captions {
		trimmedEmpty := strings.TrimSpace(caption) == ""
		assert.Equal(t, trimmedEmpty, CountWords(caption) == 0, "caption %q", caption)
	}
}

func TestCountHashtags(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    int
	}{
		{"three tags", "#a #b #c", 3},
		{"no tags", "no hashtags here", 0},
		{"double hash counts once", "##double", 1},
		{"bare hash is not a tag", "# not a tag", 0},
		{"underscore and digits", "#tag_1 and #2024", 2},
		{"non-latin script", "#привет #日本語", 2},
		{"embedded in sentence", "launching #today, follow #us!", 2},
		{"whitespace only", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountHashtags(tt.caption))
		})
	}
}

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics("Big launch today! #go #launch")
	assert.Equal(t, 29, m.Characters)
	assert.Equal(t, 5, m.Words)
	assert.Equal(t, 2, m.Hashtags)
	assert.Equal(t, XCharacterLimit-29, m.XRemaining)
}

func TestComputeMetricsOverXLimit(t *testing.T) {
	m := ComputeMetrics(strings.Repeat("a", 300))
	assert.Equal(t, 300, m.Characters)
	assert.Equal(t, -20, m.XRemaining)
}

func TestComputeMetricsLongCaption(t *testing.T) {
	caption := strings.Repeat("word #tag ", 2000) // 20k chars
	m := ComputeMetrics(caption)
	assert.Equal(t, 20000, m.Characters)
	assert.Equal(t, 4000, m.Words)
	assert.Equal(t, 2000, m.Hashtags)
}
