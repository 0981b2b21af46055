package transcript

// Normalizer cleans caption documents and re-flows the result.
type Normalizer interface {
	// Clean dispatches on doc.Kind and returns the cleaned text.
	Clean(doc RawDocument) string
	// Extract cleans text, treating it as a timed caption document when timed is set.
	Extract(text string, timed bool) string
	// Format re-flows cleaned text into chunks of lines. LanguageAuto infers the mode.
	Format(text string, lang LanguageTag, chunkSize, lineSize int) string
	// InferLanguage classifies text by CJK density using the configured threshold.
	InferLanguage(text string) LanguageTag
}
