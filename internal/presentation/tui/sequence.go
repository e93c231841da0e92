package tui

import (
	"strings"

	"github.com/aretw0/todi/pkg/notation"
	"github.com/muesli/termenv"
)

// SequenceStyler renders TODI sequences for the terminal, one colour per token kind.
type SequenceStyler struct {
	profile termenv.Profile
}

// NewSequenceStyler creates a styler. With color false, tokens are printed plain.
func NewSequenceStyler(color bool) *SequenceStyler {
	p := termenv.Ascii
	if color {
		p = termenv.ColorProfile()
	}
	return &SequenceStyler{profile: p}
}

// Render joins tokens with spaces. Empty placeholders are shown as "·" so positions
// stay visible.
func (s *SequenceStyler) Render(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = s.token(tok)
	}
	return strings.Join(parts, " ")
}

func (s *SequenceStyler) token(tok string) string {
	switch notation.Classify(tok) {
	case notation.KindAccent:
		return s.profile.String(tok).Foreground(s.profile.Color("#f472b6")).Bold().String()
	case notation.KindInitialBoundary, notation.KindFinalBoundary:
		return s.profile.String(tok).Foreground(s.profile.Color("#818cf8")).String()
	default:
		if tok == "" {
			tok = "·"
		}
		return s.profile.String(tok).Faint().String()
	}
}
