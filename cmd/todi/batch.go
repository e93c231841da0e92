package main

import (
	"context"

	"github.com/aretw0/todi/internal/cli"
	"github.com/spf13/cobra"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr",
	Short: "Recognize example images and store words_ocr and todi_ocr",
	Long: `Runs OCR on the annotation strip of every example image, corrects the
recognised notation and rewrites the record store. A backup of the store is kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := commonOptions(cmd)
		return withSignals(func(ctx context.Context) error {
			return cli.RunOCR(ctx, opts)
		})
	},
}

var resynthCmd = &cobra.Command{
	Use:   "resynth",
	Short: "Synthesize alternative tone sequences for every exercise",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := commonOptions(cmd)
		return withSignals(func(ctx context.Context) error {
			return cli.RunResynth(ctx, opts)
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the record store as CSV",
	Long:  `Writes every record as one CSV row. Without a file argument the CSV is written next to the store file.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return cli.RunExport(cmd.Context(), commonOptions(cmd), path)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List OCR transcriptions that do not match the reference grammar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunCheck(cmd.Context(), commonOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(ocrCmd, resynthCmd, exportCmd, checkCmd)
}
