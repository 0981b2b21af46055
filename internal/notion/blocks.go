package notion

import (
	"strings"
	"unicode/utf8"
)

const (
	maxBatchSize  = 100
	maxBlockChars = 2000

	contentHeading   = "Transcript Content"
	notesHeading     = "My Notes"
	notesPlaceholder = "Add your notes and insights here..."
)

// Block is one Notion block object as the API expects it.
type Block struct {
	Object    string    `json:"object"`
	Type      string    `json:"type"`
	Heading2  *RichBody `json:"heading_2,omitempty"`
	Paragraph *RichBody `json:"paragraph,omitempty"`
	Divider   *struct{} `json:"divider,omitempty"`
}

type RichBody struct {
	RichText []RichText `json:"rich_text"`
}

type RichText struct {
	Type string   `json:"type"`
	Text TextBody `json:"text"`
}

type TextBody struct {
	Content string `json:"content"`
}

func richBody(text string) *RichBody {
	return &RichBody{RichText: []RichText{{Type: "text", Text: TextBody{Content: text}}}}
}

func heading(text string) Block {
	return Block{Object: "block", Type: "heading_2", Heading2: richBody(text)}
}

func paragraph(text string) Block {
	return Block{Object: "block", Type: "paragraph", Paragraph: richBody(text)}
}

func divider() Block {
	return Block{Object: "block", Type: "divider", Divider: &struct{}{}}
}

// Blocks lays out a formatted transcript: a heading, one paragraph per chunk,
// then a divider and an empty notes section. Chunks longer than limit runes
// are re-split on sentence boundaries; anything still over the API's hard
// limit is cut at fixed offsets.
func Blocks(content string, limit int) []Block {
	blocks := []Block{heading(contentHeading)}
	for _, chunk := range strings.Split(content, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		for _, text := range splitParagraph(chunk, limit) {
			blocks = append(blocks, paragraph(text))
		}
	}
	return append(blocks,
		divider(),
		heading(notesHeading),
		paragraph(notesPlaceholder),
	)
}

// splitParagraph packs ". "-separated sentences into pieces of at most
// limit runes where possible.
func splitParagraph(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	sentences := strings.Split(text, ". ")
	var pieces []string
	var current strings.Builder
	for i, sentence := range sentences {
		if i < len(sentences)-1 {
			sentence += ". "
		}
		if current.Len() > 0 && utf8.RuneCountInString(current.String())+utf8.RuneCountInString(sentence) > limit {
			pieces = append(pieces, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sentence)
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		pieces = append(pieces, s)
	}

	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, hardSplit(p, maxBlockChars)...)
	}
	return out
}

func hardSplit(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}
	out := make([]string, 0, len(runes)/size+1)
	for i := 0; i < len(runes); i += size {
		out = append(out, string(runes[i:min(i+size, len(runes))]))
	}
	return out
}
