package textstats

import (
	"strings"
	"unicode"
)

// Tokenize splits text on whitespace and keeps purely alphabetic words.
// Each raw token is stripped of leading and trailing punctuation
// ("note." -> "note"); whatever survives must consist of letters only or
// the token is discarded ("abc123" yields nothing). Matching is
// case-sensitive.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))

	for _, field := range fields {
		word := strings.TrimFunc(field, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if word == "" {
			continue
		}
		if !isAlphabetic(word) {
			continue
		}
		words = append(words, word)
	}

	return words
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
