package transcript

import (
	"regexp"
	"strings"
)

var (
	bracketCueRe = regexp.MustCompile(`\[.*?\]`)
	parenCueRe   = regexp.MustCompile(`\(.*?\)`)
)

// removeCues deletes bracketed and parenthesized annotations plus the
// configured bare cue words, then normalizes whitespace.
func (n *implNormalizer) removeCues(text string) string {
	text = bracketCueRe.ReplaceAllString(text, "")
	text = parenCueRe.ReplaceAllString(text, "")
	if n.cueWordRe != nil {
		text = n.cueWordRe.ReplaceAllString(text, "")
	}
	return normalizeSpace(text)
}

// normalizeSpace collapses every run of Unicode whitespace to one space and trims.
func normalizeSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
