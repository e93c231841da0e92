package main

import (
	"os"
	"strings"

	"github.com/aretw0/todi/internal/cli"
	"github.com/aretw0/todi/pkg/notation"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text]",
	Short: "Correct raw OCR text",
	Long:  `Splits raw OCR text into its words and notation lines and corrects the notation. Reads stdin when no text is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		in := cmd.InOrStdin()
		if len(args) > 0 {
			in = strings.NewReader(args[0])
		}
		return cli.RunNormalize(in, cmd.OutOrStdout(), jsonMode)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate <todi_sep | token...>",
	Short: "Print alternative tone sequences",
	Long: `Samples alternatives that keep the accent and boundary positions of the given
sequence. A single argument is read in the stored "|" form, several arguments are
taken as tokens.`,
	Example: `  todi generate '%L|H*|L*H|L%'
  todi generate %L H* L%`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		sep, _ := cmd.Flags().GetBool("sep")
		noColor, _ := cmd.Flags().GetBool("no-color")

		tokens := args
		if len(args) == 1 {
			tokens = notation.SplitSep(args[0])
		}
		color := !noColor && cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))

		return cli.RunGenerate(cmd.OutOrStdout(), tokens, cli.GenerateOptions{
			K:     k,
			Seed:  seed,
			Color: color,
			Sep:   sep,
		})
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd, generateCmd)

	normalizeCmd.Flags().Bool("json", false, "Print the result as JSON")

	generateCmd.Flags().IntP("count", "n", 5, "Number of alternatives")
	generateCmd.Flags().Uint64("seed", 12345, "Random seed")
	generateCmd.Flags().Bool("sep", false, "Print sequences in the stored \"|\" form")
	generateCmd.Flags().Bool("no-color", false, "Disable coloured output")
}
