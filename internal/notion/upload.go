package notion

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vicky469/audio-classifier/internal/metadata"
)

const (
	titlePrefix   = "📺 "
	defaultStatus = "Not started"
	tagsURLPrefix = "https://example.com/tags/"
)

// DefaultTags are used when Upload is called without tags.
var DefaultTags = []string{"transcript", "video", "notes"}

func (u *implUploader) Upload(ctx context.Context, transcriptPath string, info metadata.Info, tags []string) (Result, error) {
	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return Result{}, fmt.Errorf("read transcript: %w", err)
	}
	if len(tags) == 0 {
		tags = DefaultTags
	}
	return u.CreatePage(ctx, Page{
		Title:   PageTitle(transcriptPath, info),
		Content: string(data),
		Info:    info,
		Tags:    tags,
	})
}

func (u *implUploader) CreatePage(ctx context.Context, page Page) (Result, error) {
	payload, err := u.pagePayload(ctx, page)
	if err != nil {
		return Result{}, err
	}

	id, pageURL, err := u.createPage(ctx, payload)
	if err != nil {
		return Result{}, err
	}

	blocks := Blocks(page.Content, u.opts.BlockCharLimit)
	if err := u.appendChildren(ctx, id, blocks); err != nil {
		return Result{}, err
	}

	u.logger.Info(ctx, "Created Notion page %q (%d blocks): %s", page.Title, len(blocks), pageURL)
	return Result{PageID: id, URL: pageURL, Blocks: len(blocks)}, nil
}

// pagePayload builds a database row when a database is configured, or a
// plain child page of the first visible page otherwise.
func (u *implUploader) pagePayload(ctx context.Context, page Page) (map[string]interface{}, error) {
	if u.opts.DatabaseID == "" {
		parentID, err := u.findParentPage(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"parent": map[string]string{"type": "page_id", "page_id": parentID},
			"properties": map[string]interface{}{
				"title": titleProperty(page.Title),
			},
		}, nil
	}

	return map[string]interface{}{
		"parent":     map[string]string{"database_id": u.opts.DatabaseID},
		"properties": DatabaseProperties(page),
	}, nil
}

// DatabaseProperties maps page metadata onto the transcript database columns.
func DatabaseProperties(page Page) map[string]interface{} {
	props := map[string]interface{}{
		"Title":  titleProperty(page.Title),
		"Status": map[string]interface{}{"status": map[string]string{"name": defaultStatus}},
	}
	if page.Info.Uploader != "" {
		props["Author"] = richTextProperty(page.Info.Uploader)
	}
	if page.Info.UploadDate != "" {
		props["Created"] = richTextProperty(page.Info.UploadDate)
	}
	if page.Info.Duration > 0 {
		props["Duration"] = map[string]interface{}{"phone_number": strconv.Itoa(page.Info.DurationMinutes())}
	}
	if len(page.Tags) > 0 {
		props["Tags"] = map[string]interface{}{"url": tagsURLPrefix + url.PathEscape(strings.Join(page.Tags, "-"))}
	}
	return props
}

func titleProperty(title string) map[string]interface{} {
	return map[string]interface{}{"title": []RichText{{Type: "text", Text: TextBody{Content: title}}}}
}

func richTextProperty(text string) map[string]interface{} {
	return map[string]interface{}{"rich_text": []RichText{{Type: "text", Text: TextBody{Content: text}}}}
}

// PageTitle prefers the video title and falls back to the file name without
// its _clean suffix.
func PageTitle(transcriptPath string, info metadata.Info) string {
	if info.Title != "" {
		return titlePrefix + info.Title
	}
	name := filepath.Base(transcriptPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return titlePrefix + strings.ReplaceAll(name, "_clean", "")
}
