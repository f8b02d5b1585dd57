package ingestion

import (
	"regexp"
	"strings"
)

var (
	nonPrintableRe = regexp.MustCompile(`[^\x20-\x7E\n\t]`)
	blankRunsRe    = regexp.MustCompile(`\n{3,}`)
	spaceRunsRe    = regexp.MustCompile(` {2,}`)
)

// CleanText normalizes extracted document text: non-printable characters
// become spaces, blank-line runs collapse to one blank line, and space runs
// collapse to a single space.
func CleanText(text string) string {
	text = nonPrintableRe.ReplaceAllString(text, " ")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	text = spaceRunsRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

const (
	// binarySampleSize is the number of leading bytes sampled for binary
	// detection.
	binarySampleSize = 1000
	// binaryThreshold is the proportion of non-printable characters above
	// which content reads as binary.
	binaryThreshold = 0.3
)

// IsBinaryData reports whether content looks like an un-extracted binary
// container (PDF or ZIP magic bytes, or mostly non-printable bytes) rather
// than text.
func IsBinaryData(content string) bool {
	if len(content) == 0 {
		return false
	}
	if strings.HasPrefix(content, "%PDF-") {
		return true
	}
	if len(content) >= 2 && content[:2] == "PK" {
		return true
	}

	sample := min(binarySampleSize, len(content))
	nonPrintable := 0
	for i := 0; i < sample; i++ {
		ch := content[i]
		if ch < 32 && ch != '\n' && ch != '\r' && ch != '\t' {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(sample) > binaryThreshold
}
