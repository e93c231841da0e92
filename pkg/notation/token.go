package notation

import "strings"

// Kind is the structural role of a token within a sequence.
type Kind int

const (
	KindPlaceholder Kind = iota
	KindAccent
	KindInitialBoundary
	KindFinalBoundary
)

func (k Kind) String() string {
	switch k {
	case KindAccent:
		return "accent"
	case KindInitialBoundary:
		return "initial"
	case KindFinalBoundary:
		return "final"
	default:
		return "placeholder"
	}
}

const (
	// Sep joins tokens in the stored form of a sequence.
	Sep      = "|"
	downstep = "!"
)

// Classify reports the role of token. Accent classification wins over boundary
// membership, matching how the generator reads positions.
func Classify(token string) Kind {
	switch {
	case strings.Contains(token, "*"):
		return KindAccent
	case contains(initialSet.values, token):
		return KindInitialBoundary
	case contains(finalSet.values, token):
		return KindFinalBoundary
	default:
		return KindPlaceholder
	}
}

// SplitSep splits a stored sequence ("%L|H*||H%") into its tokens, keeping empty
// placeholders. An empty string yields an empty sequence.
func SplitSep(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, Sep)
}

// JoinSep is the inverse of SplitSep.
func JoinSep(tokens []string) string {
	return strings.Join(tokens, Sep)
}

// JoinDisplay joins tokens with spaces for display.
func JoinDisplay(tokens []string) string {
	return strings.Join(tokens, " ")
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
