package notation

import (
	"strings"
	"unicode/utf8"
)

// MinOCRLength is the shortest raw OCR text worth correcting. Anything shorter is
// treated as a recognition failure.
const MinOCRLength = 5

// LineClassifier reports whether an OCR line holds notation rather than words.
type LineClassifier func(line string) bool

// HasNotationMarks is the default LineClassifier: a line with a % or * is notation.
func HasNotationMarks(line string) bool {
	return strings.ContainsAny(line, "%*")
}

// Result is the corrected output of one OCR region. An empty field means the region
// produced nothing usable for it.
type Result struct {
	Words    string
	Notation string
}

// Normalizer turns raw OCR text into a words line and a corrected notation line.
// A Normalizer is immutable and safe for concurrent use.
type Normalizer struct {
	isNotation LineClassifier
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLineClassifier replaces the notation/words line predicate.
func WithLineClassifier(c LineClassifier) Option {
	return func(n *Normalizer) {
		if c != nil {
			n.isNotation = c
		}
	}
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{isNotation: HasNotationMarks}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize splits raw into word and notation lines and repairs the notation. It returns
// false when raw is too short to be a real recognition result.
func (n *Normalizer) Normalize(raw string) (Result, bool) {
	if utf8.RuneCountInString(raw) < MinOCRLength {
		return Result{}, false
	}

	var words, notation []string
	for _, line := range strings.Split(lineBreaks.Replace(raw), "\n") {
		line = strings.TrimSpace(line)
		if n.isNotation(line) {
			notation = append(notation, line)
		} else {
			words = append(words, line)
		}
	}

	return Result{
		Words:    collapseSpace(strings.Join(words, " ")),
		Notation: Clean(strings.Join(notation, " ")),
	}, true
}

// Clean runs the correction pipeline on a notation candidate. It always returns a
// string, possibly empty.
func Clean(todi string) string {
	todi = replaceLiterals(todi)
	todi = applyRegexRepairs(todi)
	todi = replaceTokens(todi)
	return collapseSpace(todi)
}

func replaceLiterals(s string) string {
	for _, r := range orderedLiterals {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	return s
}

func applyRegexRepairs(s string) string {
	for _, r := range regexRepairs {
		out, err := r.re.Replace(s, r.to, -1, -1)
		if err != nil {
			// only a match timeout can fail here, none is configured
			continue
		}
		s = out
	}
	return s
}

func replaceTokens(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if to, ok := tokenCorrections[f]; ok {
			fields[i] = to
		}
	}
	return strings.Join(fields, " ")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
