package transcript

import (
	"regexp"
	"strings"
)

// clock matches HH:MM:SS.mmm, MM:SS.mmm and the SRT comma variant.
const clock = `(?:\d+:)?\d{1,2}:\d{2}[.,]\d+`

var (
	// timingLineRe matches a whole timing line including trailing layout
	// directives. A numeric cue identifier directly above it is part of the match.
	timingLineRe = regexp.MustCompile(`(?m)^(?:[ \t]*\d+[ \t]*\n)?[ \t]*` + clock + `[ \t]*-->[ \t]*` + clock + `[^\n]*$`)

	metadataBlockRe = regexp.MustCompile(`^(?:NOTE|STYLE|REGION)(?:[ \t]|$)`)
)

const headerIdentifier = "WEBVTT"

// HasTimingMarkers reports whether text contains at least one caption timing line.
func HasTimingMarkers(text string) bool {
	return timingLineRe.MatchString(normalizeNewlines(text))
}

// splitSegments locates every timing line as an index range, then maps the
// gaps between consecutive ranges to segments. Text before the first marker
// (after the header) forms its own segment. Blank segments are dropped.
func splitSegments(doc string) []Segment {
	markers := timingLineRe.FindAllStringIndex(doc, -1)
	start := headerEnd(doc, markers)

	segments := make([]Segment, 0, len(markers)+1)
	appendSpan := func(from, to int) {
		if from >= to {
			return
		}
		text := strings.TrimSpace(doc[from:to])
		if text == "" {
			return
		}
		segments = append(segments, Segment{Index: len(segments), Text: text})
	}

	for _, m := range markers {
		appendSpan(start, m[0])
		start = m[1]
	}
	appendSpan(start, len(doc))
	return segments
}

// headerEnd returns the offset just past the WEBVTT header block. The block
// ends at the first blank line or the first timing marker, whichever is first.
func headerEnd(doc string, markers [][]int) int {
	if !strings.HasPrefix(doc, headerIdentifier) {
		return 0
	}
	end := len(doc)
	if i := strings.Index(doc, "\n\n"); i >= 0 {
		end = i + 2
	}
	if len(markers) > 0 && markers[0][0] < end {
		end = markers[0][0]
	}
	return end
}

// dropMetadataBlocks removes NOTE, STYLE and REGION blocks that sit between cues.
func dropMetadataBlocks(text string) string {
	if !strings.Contains(text, "NOTE") && !strings.Contains(text, "STYLE") && !strings.Contains(text, "REGION") {
		return text
	}
	blocks := strings.Split(text, "\n\n")
	kept := blocks[:0]
	for _, block := range blocks {
		if metadataBlockRe.MatchString(strings.TrimSpace(block)) {
			continue
		}
		kept = append(kept, block)
	}
	return strings.Join(kept, "\n\n")
}

func normalizeNewlines(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
