package composer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// XCharacterLimit is the X.com caption length shown next to the character
// counter. Captions over the limit are still accepted; the preview just
// reports a negative remainder.
const XCharacterLimit = 280

// A hashtag is '#' immediately followed by one or more letters (any
// script), digits, or underscores. "##double" therefore counts once,
// starting at the second '#'.
var hashtagPattern = regexp.MustCompile(`#[\p{L}\d_]+`)

type Metrics struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Hashtags   int `json:"hashtags"`
	XRemaining int `json:"x_remaining"`
}

// CountCharacters counts Unicode code points, not bytes.
func CountCharacters(caption string) int {
	return utf8.RuneCountInString(caption)
}

// CountWords counts maximal non-whitespace runs. A caption that is empty
// or all whitespace has zero words; hashtags count as words.
func CountWords(caption string) int {
	return len(strings.Fields(caption))
}

// CountHashtags counts non-overlapping matches left to right.
func CountHashtags(caption string) int {
	return len(hashtagPattern.FindAllStringIndex(caption, -1))
}

func ComputeMetrics(caption string) Metrics {
	chars := CountCharacters(caption)
	return Metrics{
		Characters: chars,
		Words:      CountWords(caption),
		Hashtags:   CountHashtags(caption),
		XRemaining: XCharacterLimit - chars,
	}
}
