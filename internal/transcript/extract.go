package transcript

import (
	"regexp"
	"strings"
)

var (
	directiveLineRe = regexp.MustCompile(`(?m)^[ \t]*(?:align|position|line|size|region|vertical):[^\n]*$`)
	timingTagRe     = regexp.MustCompile(`<` + clock + `>`)
	// stylingTagRe matches opening and closing cue styling tags, including
	// class and annotation forms such as <c.colorE5E5E5> and <v Speaker>.
	stylingTagRe = regexp.MustCompile(`</?(?:c|i|b|u|v|lang|ruby|rt)(?:[.\s][^<>\n]*)?>`)

	entityReplacer = strings.NewReplacer(
		"&gt;", ">",
		"&lt;", "<",
		"&amp;", "&",
		"&nbsp;", " ",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

func (n *implNormalizer) Clean(doc RawDocument) string {
	return n.Extract(doc.Text, doc.Kind == KindTimedCaption)
}

func (n *implNormalizer) Extract(text string, timed bool) string {
	text = normalizeNewlines(text)
	if !timed {
		return n.collapse(n.removeCues(strings.TrimSpace(text)))
	}

	segments := splitSegments(text)
	cleaned := make([]string, 0, len(segments))
	for _, seg := range segments {
		if t := n.cleanSegment(seg.Text); t != "" {
			cleaned = append(cleaned, t)
		}
	}

	merged := normalizeSpace(strings.Join(cleaned, " "))
	merged = n.removeCues(merged)
	return n.collapse(merged)
}

func (n *implNormalizer) cleanSegment(text string) string {
	text = dropMetadataBlocks(text)
	text = directiveLineRe.ReplaceAllString(text, "")
	text = timingTagRe.ReplaceAllString(text, "")
	text = stylingTagRe.ReplaceAllString(text, "")
	text = entityReplacer.Replace(text)
	text = joinLines(text)
	return n.removeCues(text)
}

func joinLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}
