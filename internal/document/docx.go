// Package document exports formatted transcripts as Word documents.
package document

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
	textColor = "000000"
)

// Write saves formatted text as a docx at outputPath: a bold title, one
// paragraph per line and an empty paragraph between chunks.
func Write(title, formatted, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, line := range paragraphs(formatted) {
		p := doc.AddParagraph("")
		if line != "" {
			addRun(p, line, false, fontSize)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// paragraphs flattens chunks into lines, with "" standing for the gap
// between two chunks.
func paragraphs(formatted string) []string {
	var out []string
	for _, chunk := range strings.Split(formatted, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		for _, line := range strings.Split(chunk, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color(textColor)
	if bold {
		run.Bold(true)
	}
}
