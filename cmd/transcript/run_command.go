package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vicky469/audio-classifier/internal/config"
	"github.com/vicky469/audio-classifier/internal/downloader"
	"github.com/vicky469/audio-classifier/internal/processor"
	"github.com/vicky469/audio-classifier/internal/transcriber"
	"github.com/vicky469/audio-classifier/internal/workflow"
	"github.com/vicky469/audio-classifier/pkg/executor"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var noTranscribe bool

	cmd := &cobra.Command{
		Use:   "run <url> [tags...]",
		Short: "Download captions for a video, clean them and upload to Notion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			wf, err := newWorkflow(ctx, cfg, !noTranscribe)
			if err != nil {
				return err
			}

			res, runErr := wf.Run(cmd.Context(), args[0], args[1:])
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderRunSummary(out, res))
			return runErr
		},
	}

	cmd.Flags().BoolVar(&noTranscribe, "no-transcribe", false, "Fail instead of transcribing audio when a video has no captions")
	return cmd
}

func newWorkflow(ctx *commandContext, cfg *config.Config, transcribe bool) (workflow.Workflow, error) {
	log := ctx.log
	exec := executor.New()

	up, err := ctx.uploader()
	if err != nil {
		return nil, err
	}

	deps := workflow.Deps{
		Downloader: downloader.New(downloader.Options{
			BinaryPath: cfg.Download.BinaryPath,
			Languages:  cfg.Download.Languages,
			Retries:    cfg.Download.Retries,
		}, exec, log),
		Processor: processor.New(cfg, up, log),
		Uploader:  up,
	}
	if transcribe {
		tr, err := transcriber.New(cfg, exec, log)
		if err != nil {
			log.Warn(context.Background(), "Transcription fallback disabled: %v", err)
		} else {
			deps.Transcriber = tr
		}
	}
	return workflow.New(cfg, deps, log), nil
}

func renderRunSummary(w io.Writer, res workflow.Results) string {
	download := res.Download.CaptionPath
	if res.Download.Transcribed {
		download += " (transcribed)"
	}
	rows := [][]string{
		{"Download", status(res.Download.Success), download, errText(res.Download.Err)},
	}
	if res.Download.Success {
		rows = append(rows, []string{"Process", status(res.Process.Success), res.Process.OutputPath, errText(res.Process.Err)})
	}
	if res.Process.Success {
		rows = append(rows, []string{"Upload", status(res.Upload.Success), res.Upload.PageURL, errText(res.Upload.Err)})
	}
	return renderTable(w, []string{"Step", "Status", "Result", "Error"}, rows)
}
