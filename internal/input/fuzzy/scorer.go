package fuzzy

import "unicode"

// Weights tunes the scorer.
type Weights struct {
	// Base is the starting score for any match.
	Base int

	// Consecutive is added for each match directly after the previous one.
	Consecutive int

	// WordStart is added for each match at the start of a word.
	WordStart int

	// Prefix is added when the text starts with the query.
	Prefix int

	// Gap is subtracted for each unmatched rune between the first and
	// last match.
	Gap int

	// Leading is subtracted for each rune before the first match.
	Leading int

	// ShortText rewards texts shorter than this many runes, one point per
	// rune.
	ShortText int
}

// DefaultWeights favors word starts such as "v" "s" in "view3d.select".
func DefaultWeights() Weights {
	return Weights{
		Base:        100,
		Consecutive: 20,
		WordStart:   15,
		Prefix:      50,
		Gap:         2,
		Leading:     1,
		ShortText:   24,
	}
}

// score rates matched positions within text. Any match scores at least 1.
func (w Weights) score(query, original, text []rune, matches []int) int {
	s := w.Base
	for i, idx := range matches {
		if i > 0 && idx == matches[i-1]+1 {
			s += w.Consecutive
		}
		if wordStart(original, idx) {
			s += w.WordStart
		}
	}

	first, last := matches[0], matches[len(matches)-1]
	s -= (last - first + 1 - len(matches)) * w.Gap
	s -= first * w.Leading
	if n := len(text); n < w.ShortText {
		s += w.ShortText - n
	}
	if hasPrefix(text, query) {
		s += w.Prefix
	}
	return max(s, 1)
}

func hasPrefix(text, query []rune) bool {
	if len(text) < len(query) {
		return false
	}
	for i, r := range query {
		if text[i] != r {
			return false
		}
	}
	return true
}

func wordStart(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	prev, cur := runes[idx-1], runes[idx]
	switch {
	case prev == '.' || prev == '_' || unicode.IsSpace(prev):
		return true
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	}
	return false
}
