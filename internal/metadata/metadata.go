// Package metadata reads the video info JSON that sits next to a caption file.
package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vicky469/audio-classifier/internal/transcript"
)

// Info is the subset of video metadata the pipeline uses.
type Info struct {
	// Found is false when no companion file exists.
	Found bool
	// Path is the companion file that was read.
	Path       string
	Language   string
	Title      string
	Uploader   string
	UploadDate string
	// Duration is in seconds.
	Duration   float64
	WebpageURL string
}

// DurationMinutes returns the duration rounded down to whole minutes.
func (i Info) DurationMinutes() int {
	return int(i.Duration) / 60
}

// Load reads the companion metadata for captionPath. A missing companion is
// not an error; the result has Found set to false.
func Load(captionPath string) (Info, error) {
	path, ok := Find(captionPath)
	if !ok {
		return Info{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("read metadata: %w", err)
	}
	info, err := Parse(data)
	if err != nil {
		return Info{}, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	info.Path = path
	return info, nil
}

// Parse extracts Info from a yt-dlp style info document.
func Parse(data []byte) (Info, error) {
	if !gjson.ValidBytes(data) {
		return Info{}, fmt.Errorf("invalid JSON")
	}

	uploader := gjson.GetBytes(data, "uploader").String()
	if uploader == "" {
		uploader = gjson.GetBytes(data, "channel").String()
	}

	return Info{
		Found:      true,
		Language:   gjson.GetBytes(data, "language").String(),
		Title:      gjson.GetBytes(data, "title").String(),
		Uploader:   uploader,
		UploadDate: gjson.GetBytes(data, "upload_date").String(),
		Duration:   gjson.GetBytes(data, "duration").Float(),
		WebpageURL: gjson.GetBytes(data, "webpage_url").String(),
	}, nil
}

// Find returns the first existing companion file for captionPath.
func Find(captionPath string) (string, bool) {
	for _, candidate := range Candidates(captionPath) {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Candidates lists companion paths in lookup order: <base>.json and
// <base>.info.json, then the same with a trailing language suffix removed
// (talk.en.vtt also looks for talk.info.json).
func Candidates(captionPath string) []string {
	base := strings.TrimSuffix(captionPath, filepath.Ext(captionPath))
	out := []string{base + ".json", base + ".info.json"}
	if LanguageFromFilename(captionPath) != "" {
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		out = append(out, stem+".json", stem+".info.json")
	}
	return out
}

// LanguageFromFilename returns the language suffix of a caption file name,
// as yt-dlp writes them (talk.zh-Hans.vtt gives "zh-Hans"), or "" when the
// name carries none.
func LanguageFromFilename(captionPath string) string {
	name := filepath.Base(captionPath)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	suffix := strings.TrimPrefix(filepath.Ext(base), ".")
	if suffix == "" || len(suffix) > 12 {
		return ""
	}
	if transcript.TagForLanguage(suffix) == transcript.LanguageAuto {
		return ""
	}
	return suffix
}
