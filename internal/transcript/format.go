package transcript

import "strings"

func (n *implNormalizer) Format(text string, lang LanguageTag, chunkSize, lineSize int) string {
	if lang == LanguageAuto {
		lang = n.InferLanguage(text)
	}
	if lang == CharacterSegmented {
		return formatRunes(text, chunkSize, lineSize)
	}
	return formatWords(text, chunkSize, lineSize)
}

// formatWords groups whitespace-separated words into chunks of chunkSize
// words, each broken into lines of lineSize words.
func formatWords(text string, chunkSize, lineSize int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	chunkSize, lineSize = windowSizes(len(words), chunkSize, lineSize)

	chunks := make([]string, 0, len(words)/chunkSize+1)
	for _, chunk := range window(words, chunkSize) {
		lines := make([]string, 0, len(chunk)/lineSize+1)
		for _, line := range window(chunk, lineSize) {
			lines = append(lines, strings.Join(line, " "))
		}
		chunks = append(chunks, strings.Join(lines, "\n"))
	}
	return strings.Join(chunks, "\n\n")
}

// formatRunes breaks text at fixed rune offsets. Whitespace counts as a
// character and is never used to pick a break point.
func formatRunes(text string, chunkSize, lineSize int) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	chunkSize, lineSize = windowSizes(len(runes), chunkSize, lineSize)

	chunks := make([]string, 0, len(runes)/chunkSize+1)
	for _, chunk := range window(runes, chunkSize) {
		lines := make([]string, 0, len(chunk)/lineSize+1)
		for _, line := range window(chunk, lineSize) {
			lines = append(lines, string(line))
		}
		chunks = append(chunks, strings.Join(lines, "\n"))
	}
	return strings.Join(chunks, "\n\n")
}

// windowSizes treats a non-positive chunk size as "everything in one chunk"
// and a non-positive line size as "one line per chunk".
func windowSizes(total, chunkSize, lineSize int) (int, int) {
	if chunkSize <= 0 {
		chunkSize = total
	}
	if lineSize <= 0 {
		lineSize = chunkSize
	}
	return chunkSize, lineSize
}

// window partitions items into consecutive slices of at most size elements.
func window[T any](items []T, size int) [][]T {
	out := make([][]T, 0, len(items)/size+1)
	for i := 0; i < len(items); i += size {
		out = append(out, items[i:min(i+size, len(items))])
	}
	return out
}
