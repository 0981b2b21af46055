package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vicky469/audio-classifier/internal/workflow"
)

func newUploadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file> [tags...]",
		Short: "Upload an already formatted transcript to Notion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			up, err := ctx.uploader()
			if err != nil {
				return err
			}
			if up == nil {
				return workflow.ErrNoUploader
			}

			wf := workflow.New(cfg, workflow.Deps{Uploader: up}, ctx.log)
			step, err := wf.UploadExisting(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s: %s\n", args[0], step.PageURL)
			return nil
		},
	}
}
