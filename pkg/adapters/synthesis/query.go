package synthesis

import (
	"fmt"
	"strings"

	"github.com/aretw0/todi/pkg/domain"
)

// DefaultBaseURL is the ToDI synthesis host.
const DefaultBaseURL = "https://todi.cls.ru.nl"

// placeholder stands for an empty position in a synthesis query.
const placeholder = "---"

// QueryString formats tokens the way the synthesis script reads them: joined with
// " + ", empty tokens as "---", spaces encoded as %20.
func QueryString(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if t == "" {
			t = placeholder
		}
		parts[i] = t
	}
	return strings.ReplaceAll(strings.Join(parts, " + "), " ", "%20")
}

// ScriptSuffix derives the synthesis script suffix from an exercise id: "ex3b_2" -> "3b".
func ScriptSuffix(exerciseID string) (string, error) {
	prefix, rest, ok := strings.Cut(exerciseID, "_")
	if !ok || strings.Contains(rest, "_") || len(prefix) < 2 {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidExerciseID, exerciseID)
	}
	return prefix[2:], nil
}

// QueryURL builds the synthesis request for an exercise utterance with new tokens.
// The query is sent as is: the service expects literal %, * and + characters.
func QueryURL(baseURL string, exercise domain.Record, tokens []string) (string, error) {
	suffix, err := ScriptSuffix(exercise.ExerciseID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/cgi-bin/synthese%s.pl?var=set&todi=%s=%s",
		strings.TrimRight(baseURL, "/"), suffix, exercise.Index, QueryString(tokens)), nil
}
