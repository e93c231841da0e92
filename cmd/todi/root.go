package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/todi/internal/cli"
	"github.com/aretw0/todi/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "todi",
	Short: "ToDI intonation training-data toolkit",
	Long: `todi corrects OCR transcriptions of ToDI annotated examples and generates
alternative tone sequences for resynthesis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("dir", "", "Data directory, overrides data_dir from the config")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

func commonOptions(cmd *cobra.Command) cli.Options {
	cfgPath, _ := cmd.Flags().GetString("config")
	dir, _ := cmd.Flags().GetString("dir")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Options{
		ConfigPath: cfgPath,
		DataDir:    dir,
		Debug:      debug,
		Out:        cmd.OutOrStdout(),
		Pretty:     cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// withSignals runs fn with a context cancelled on SIGINT or SIGTERM.
func withSignals(fn func(ctx context.Context) error) error {
	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()
	return fn(ctx)
}
