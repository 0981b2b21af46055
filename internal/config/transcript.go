package config

import "github.com/vicky469/audio-classifier/internal/transcript"

// TranscriptOptions builds normalizer options from the transcript section.
func (c *Config) TranscriptOptions() transcript.Options {
	return transcript.Options{
		MinPhraseWords:   c.Transcript.MinPhraseWords,
		MaxPhraseWords:   c.Transcript.MaxPhraseWords,
		DensityThreshold: c.Transcript.DensityThreshold,
		CueWords:         append([]string(nil), c.Transcript.CueWords...),
	}
}

// ChunkSizes returns the chunk and line sizes for a formatting mode.
func (c *Config) ChunkSizes(lang transcript.LanguageTag) (chunkSize, lineSize int) {
	if lang == transcript.CharacterSegmented {
		return c.Format.CharChunkSize, c.Format.CharLineSize
	}
	return c.Format.WordChunkSize, c.Format.WordLineSize
}
