package transcript

import (
	"regexp"
	"strings"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

func (n *implNormalizer) collapse(text string) string {
	words := CollapseRepeats(strings.Fields(text), n.opts.MinPhraseWords, n.opts.MaxPhraseWords)
	return DedupSentences(strings.Join(words, " "))
}

// CollapseRepeats removes back-to-back repeats of phrases between minLen and
// maxLen words long. At each position the longest repeating phrase wins; one
// copy is kept and every consecutive repeat is skipped. Positions with no
// repeating phrase emit a single word and advance by one.
func CollapseRepeats(words []string, minLen, maxLen int) []string {
	out := make([]string, 0, len(words))
	if minLen < 1 || maxLen < minLen {
		return append(out, words...)
	}

	n := len(words)
	for i := 0; i < n; {
		if i+minLen >= n {
			out = append(out, words[i:]...)
			break
		}

		bestLen, bestReps := 0, 0
		limit := min(maxLen, n-i-1)
		for l := minLen; l <= limit; l++ {
			if reps := countRepeats(words, i, l); reps > 1 && l > bestLen {
				bestLen, bestReps = l, reps
			}
		}

		if bestLen > 0 {
			out = append(out, words[i:i+bestLen]...)
			i += bestLen * bestReps
			continue
		}
		out = append(out, words[i])
		i++
	}
	return out
}

// countRepeats counts consecutive copies of words[start:start+length]
// beginning at start. The result is at least 1.
func countRepeats(words []string, start, length int) int {
	phrase := words[start : start+length]
	reps := 1
	for pos := start + length; pos+length <= len(words); pos += length {
		if !equalWords(phrase, words[pos:pos+length]) {
			break
		}
		reps++
	}
	return reps
}

func equalWords(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DedupSentences splits text on runs of sentence terminators and keeps the
// first occurrence of each exact sentence, in order. Sentences are rejoined
// with ". " and a trailing period. Text without sentences yields "".
func DedupSentences(text string) string {
	parts := sentenceSplitRe.Split(text, -1)
	seen := make(map[string]struct{}, len(parts))
	unique := make([]string, 0, len(parts))
	for _, part := range parts {
		sentence := strings.TrimSpace(part)
		if sentence == "" {
			continue
		}
		if _, ok := seen[sentence]; ok {
			continue
		}
		seen[sentence] = struct{}{}
		unique = append(unique, sentence)
	}
	if len(unique) == 0 {
		return ""
	}
	return strings.Join(unique, ". ") + "."
}
