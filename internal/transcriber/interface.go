package transcriber

import "context"

// Transcriber turns an audio file into a transcript file on disk.
type Transcriber interface {
	// Transcribe writes a transcript next to audioPath. An empty language
	// uses the backend's configured default.
	Transcribe(ctx context.Context, audioPath, language string) (Transcript, error)
}

// Transcript is the file a backend produced.
type Transcript struct {
	Path string
	// Timed is true when Path holds timing markers (whisper VTT output).
	Timed   bool
	Backend string
}
