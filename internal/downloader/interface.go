package downloader

import (
	"context"
	"errors"
)

// ErrNoCaptions means yt-dlp succeeded but the video has no subtitle track
// in any requested language.
var ErrNoCaptions = errors.New("no captions available")

// Downloader fetches captions and audio for a video URL.
type Downloader interface {
	// DownloadCaptions writes subtitles and the info JSON into dir.
	DownloadCaptions(ctx context.Context, url, dir string) (Captions, error)
	// DownloadAudio extracts the audio track as WAV into dir.
	DownloadAudio(ctx context.Context, url, dir string) (string, error)
}

// Captions are the files written by DownloadCaptions. InfoPath is empty
// when yt-dlp wrote no info JSON.
type Captions struct {
	CaptionPath string
	InfoPath    string
}
