package transcript

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// characterSegmentedBases lists base languages written without word spacing.
var characterSegmentedBases = map[string]struct{}{
	"zh":  {},
	"ja":  {},
	"yue": {},
}

// languageWords maps word forms and ISO 639-2 codes that BCP 47 parsing
// does not resolve to a base language.
var languageWords = map[string]string{
	"chinese":   "zh",
	"mandarin":  "zh",
	"cantonese": "yue",
	"japanese":  "ja",
	"chi":       "zh",
	"zho":       "zh",
	"cmn":       "zh",
	"jpn":       "ja",
}

func (n *implNormalizer) InferLanguage(text string) LanguageTag {
	return InferLanguage(text, n.opts.DensityThreshold)
}

// InferLanguage returns CharacterSegmented when the share of CJK runes
// among non-whitespace runes is strictly greater than threshold.
func InferLanguage(text string, threshold float64) LanguageTag {
	var cjk, total int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if isCJK(r) {
			cjk++
		}
	}
	if total > 0 && float64(cjk)/float64(total) > threshold {
		return CharacterSegmented
	}
	return WordSegmented
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana)
}

// TagForLanguage maps a metadata language code ("zh", "zh-Hans", "ja-JP",
// "chinese", "en") to a LanguageTag. Empty or unparseable codes return
// LanguageAuto so the caller falls back to inference.
func TagForLanguage(code string) LanguageTag {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return LanguageAuto
	}

	base, ok := languageWords[code]
	if !ok {
		tag, err := language.Parse(code)
		if err != nil {
			return LanguageAuto
		}
		b, _ := tag.Base()
		base = b.String()
	}

	if _, ok := characterSegmentedBases[base]; ok {
		return CharacterSegmented
	}
	return WordSegmented
}
