package transcript

import (
	"regexp"
	"strings"
)

// Options carries every tunable the normalizer uses. There are no built-in
// defaults; callers (normally the config package) supply all values.
type Options struct {
	// MinPhraseWords and MaxPhraseWords bound the phrase lengths searched by
	// the repetition collapse. MinPhraseWords < 1 or MaxPhraseWords <
	// MinPhraseWords disables the word-level pass.
	MinPhraseWords int
	MaxPhraseWords int
	// DensityThreshold is the CJK share of non-space runes above which text
	// is considered character-segmented.
	DensityThreshold float64
	// CueWords are bare noise words removed case-insensitively as whole words.
	CueWords []string
}

type implNormalizer struct {
	opts      Options
	cueWordRe *regexp.Regexp
}

// New creates a Normalizer for the given options.
func New(opts Options) Normalizer {
	opts.CueWords = append([]string(nil), opts.CueWords...)
	return &implNormalizer{
		opts:      opts,
		cueWordRe: compileCueWords(opts.CueWords),
	}
}

func compileCueWords(words []string) *regexp.Regexp {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
