package todi

import (
	"iter"

	"github.com/aretw0/todi/pkg/notation"
)

// Version is the toolkit version. Release builds set it with -ldflags.
var Version = "v0.1.0-dev"

var defaultNormalizer = notation.NewNormalizer()

// Normalize splits raw OCR text into its words and corrected notation lines using the
// default line classifier. ok is false when the text is too short to hold anything.
func Normalize(raw string) (res notation.Result, ok bool) {
	return defaultNormalizer.Normalize(raw)
}

// Alternatives yields up to k tone sequences parallel to original, drawing from rng.
// See notation.Generator for the sampling rules.
func Alternatives(rng notation.Rand, original []string, k int) iter.Seq[[]string] {
	return notation.NewGenerator(rng).Alternatives(original, k)
}

// WellFormed reports whether s matches the reference ToDI grammar.
func WellFormed(s string) bool {
	return notation.WellFormed(s)
}
