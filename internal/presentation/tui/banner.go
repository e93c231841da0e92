package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the toolkit banner with its version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	title := termenv.String(" ToDI toolkit ").Foreground(p.Color("#f8fafc")).Background(p.Color("#6366f1")).Bold()
	sub := termenv.String("Transcription of Dutch Intonation").Foreground(p.Color("#a78bfa"))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", title, termenv.String(version).Faint())
	fmt.Fprintln(w, sub)
	fmt.Fprintln(w)
}
