package notion

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlocksLayout(t *testing.T) {
	blocks := Blocks("first chunk\nline two\n\n\n\nsecond chunk", 1800)
	require.Len(t, blocks, 6)

	assert.Equal(t, "heading_2", blocks[0].Type)
	assert.Equal(t, "Transcript Content", blocks[0].Heading2.RichText[0].Text.Content)
	assert.Equal(t, "first chunk\nline two", blocks[1].Paragraph.RichText[0].Text.Content)
	assert.Equal(t, "second chunk", blocks[2].Paragraph.RichText[0].Text.Content)
	assert.Equal(t, "divider", blocks[3].Type)
	assert.Equal(t, "My Notes", blocks[4].Heading2.RichText[0].Text.Content)
	assert.Equal(t, "Add your notes and insights here...", blocks[5].Paragraph.RichText[0].Text.Content)
}

func TestBlocksEmptyContent(t *testing.T) {
	blocks := Blocks("", 1800)
	require.Len(t, blocks, 4)
	assert.Equal(t, "divider", blocks[1].Type)
}

func TestBlockJSON(t *testing.T) {
	data, err := json.Marshal([]Block{divider(), paragraph("hi")})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"object":"block","type":"divider","divider":{}},
		{"object":"block","type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"hi"}}]}}
	]`, string(data))
}

func TestSplitParagraph(t *testing.T) {
	sentence := strings.Repeat("x", 40)
	text := strings.Join([]string{sentence, sentence, sentence, sentence}, ". ") + "."

	pieces := splitParagraph(text, 100)
	require.Len(t, pieces, 2)
	for _, p := range pieces {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 100)
	}
	assert.Equal(t, sentence+". "+sentence+".", pieces[0])
	assert.Equal(t, sentence+". "+sentence+".", pieces[1])
}

func TestSplitParagraphShort(t *testing.T) {
	assert.Equal(t, []string{"short one. two."}, splitParagraph("short one. two.", 100))
}

func TestSplitParagraphHardLimit(t *testing.T) {
	text := strings.Repeat("字", 4500)

	pieces := splitParagraph(text, 1800)
	require.Len(t, pieces, 3)
	assert.Equal(t, 2000, utf8.RuneCountInString(pieces[0]))
	assert.Equal(t, 2000, utf8.RuneCountInString(pieces[1]))
	assert.Equal(t, 500, utf8.RuneCountInString(pieces[2]))
	assert.Equal(t, text, strings.Join(pieces, ""))
}
