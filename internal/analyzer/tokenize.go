package analyzer

import (
	"regexp"
	"strings"
)

// nonAlnumRe matches every character outside lowercase letters, digits and
// whitespace. Compiled once at package initialization.
var nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]`)

// minTokenLength is the shortest token kept after normalization. Tokens of
// this length or shorter carry almost no signal for matching.
const minTokenLength = 2

// Tokenize normalizes raw text into a filtered token sequence: lowercase,
// punctuation stripped, split on whitespace, with short tokens and common
// English stop words removed. Empty input yields an empty sequence.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	lower = nonAlnumRe.ReplaceAllString(lower, " ")

	fields := strings.Fields(lower)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) <= minTokenLength {
			continue
		}
		if stopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
