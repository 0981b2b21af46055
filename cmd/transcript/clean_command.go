package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vicky469/audio-classifier/internal/processor"
	"github.com/vicky469/audio-classifier/internal/transcript"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var (
		lang      string
		chunkSize int
		lineSize  int
		outDir    string
		printText bool
		docx      bool
	)

	cmd := &cobra.Command{
		Use:   "clean <files...>",
		Short: "Clean and format caption or transcript files",
		Long: "Strip timing and markup from VTT, SRT or plain-text transcripts, collapse\n" +
			"repeated phrases and re-chunk the text into paragraphs and lines.\n" +
			"Each input writes <out>/<name>_clean.txt.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if docx {
				cfg.Output.Docx = true
			}

			opts := processor.FileOptions{
				ChunkSize: chunkSize,
				LineSize:  lineSize,
				OutputDir: outDir,
			}
			if lang != "" {
				opts.Language = transcript.TagForLanguage(lang)
				if opts.Language == transcript.LanguageAuto {
					return fmt.Errorf("unknown language %q", lang)
				}
			}

			proc := processor.New(cfg, nil, ctx.log)
			results, runErr := proc.ProcessAll(cmd.Context(), args, opts)

			out := cmd.OutOrStdout()
			if printText {
				for _, res := range results {
					if res.OutputPath == "" {
						continue
					}
					if len(results) > 1 {
						fmt.Fprintf(out, "==> %s <==\n", filepath.Base(res.InputPath))
					}
					fmt.Fprintln(out, res.Formatted)
				}
				return runErr
			}

			rows := make([][]string, 0, len(results))
			for i, res := range results {
				if res.OutputPath == "" {
					rows = append(rows, []string{args[i], "", "", "", status(false)})
					continue
				}
				rows = append(rows, []string{
					filepath.Base(res.InputPath),
					res.Language.String(),
					strconv.FormatBool(res.Timed),
					res.OutputPath,
					status(true),
				})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Input", "Language", "Timed", "Output", "Status"}, rows))
			return runErr
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language code (en, zh, ja, ...); inferred when empty")
	cmd.Flags().IntVar(&chunkSize, "chunk", 0, "Paragraph size in words or characters")
	cmd.Flags().IntVar(&lineSize, "line", 0, "Line size in words or characters")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default paths.output)")
	cmd.Flags().BoolVarP(&printText, "print", "p", false, "Print the formatted text instead of a summary")
	cmd.Flags().BoolVar(&docx, "docx", false, "Also write a .docx next to each transcript")

	return cmd
}
