package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vicky469/audio-classifier/internal/transcriber"
	"github.com/vicky469/audio-classifier/pkg/executor"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var (
		lang    string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio>",
		Short: "Transcribe an audio file with whisper.cpp or Gemini",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.Transcription.Backend = strings.ToLower(strings.TrimSpace(backend))
			}

			tr, err := transcriber.New(cfg, executor.New(), ctx.log)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := tr.Transcribe(cmd.Context(), args[0], lang)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Audio", "Backend", "Transcript", "Elapsed"}, [][]string{
				{args[0], res.Backend, res.Path, time.Since(start).Round(time.Second).String()},
			}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Spoken language hint (default whisper.language)")
	cmd.Flags().StringVar(&backend, "backend", "", "Override transcription.backend (whisper or gemini)")
	return cmd
}
