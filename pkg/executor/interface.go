package executor

import "context"

// Executor runs external tools (yt-dlp, ffmpeg, whisper) and returns stdout.
// A failed command returns an *Error.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteInDir is Execute with the working directory set to dir, so
	// relative output paths land there.
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
