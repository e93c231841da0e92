package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/aretw0/todi/internal/presentation/tui"
	"github.com/aretw0/todi/pkg/notation"
)

// RunNormalize reads raw OCR text from r and prints the corrected words and notation.
// With jsonMode the result is printed as one JSON object.
func RunNormalize(r io.Reader, w io.Writer, jsonMode bool) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	res, ok := notation.NewNormalizer().Normalize(string(raw))

	if jsonMode {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(map[string]any{
			"ok":          ok,
			"words":       res.Words,
			"todi":        res.Notation,
			"well_formed": res.Notation != "" && notation.WellFormed(res.Notation),
		})
	}
	if !ok {
		return fmt.Errorf("input shorter than %d characters", notation.MinOCRLength)
	}
	fmt.Fprintf(w, "words: %s\n", res.Words)
	fmt.Fprintf(w, "todi:  %s\n", res.Notation)
	return nil
}

// GenerateOptions configures RunGenerate.
type GenerateOptions struct {
	K     int
	Seed  uint64
	Color bool
	// Sep prints sequences in the stored "|" form instead of styled tokens.
	Sep bool
}

// RunGenerate prints up to K alternatives of tokens, one per line.
func RunGenerate(w io.Writer, tokens []string, opts GenerateOptions) error {
	if len(tokens) == 0 {
		return fmt.Errorf("no tokens given")
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	styler := tui.NewSequenceStyler(opts.Color)

	bw := bufio.NewWriter(w)
	for seq := range notation.NewGenerator(rng).Alternatives(tokens, opts.K) {
		if opts.Sep {
			fmt.Fprintln(bw, notation.JoinSep(seq))
		} else {
			fmt.Fprintln(bw, styler.Render(seq))
		}
	}
	return bw.Flush()
}
