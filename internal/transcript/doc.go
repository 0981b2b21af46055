// Package transcript turns caption documents into readable, chunked prose.
//
// Cleaning runs in a fixed order: header strip, timing-marker segmentation,
// per-segment markup and directive removal, cue removal, whitespace
// normalization and repetition collapse. Formatting then re-flows the cleaned
// text into chunks of lines, counting words for word-segmented languages and
// runes for character-segmented ones.
//
// Everything here is pure. A Normalizer holds only compiled patterns and the
// Options it was built with, so one instance can serve concurrent callers.
package transcript
