package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/todi/pkg/pipeline"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// CheckReport formats rep as a markdown summary with a table of the malformed records.
func CheckReport(rep pipeline.CheckReport) string {
	var b strings.Builder
	b.WriteString("# OCR check\n\n")
	fmt.Fprintf(&b, "**%d of %d** OCR transcriptions are well-formed.\n", rep.WellFormed, rep.Checked)
	if len(rep.Malformed) == 0 {
		return b.String()
	}

	b.WriteString("\n| index | todi_ocr |\n|---|---|\n")
	for _, r := range rep.Malformed {
		fmt.Fprintf(&b, "| %s | `%s` |\n", cell(r.Index), cell(r.TodiOCR))
	}
	return b.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
