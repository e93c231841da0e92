package notation

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// The reference grammar does not cover every TODI rule. It is used for reporting only;
// the Normalizer never validates its output against it.
var wellFormed = func() *regexp2.Regexp {
	accent := `(!?(H\*LH|L\*HL|H\*L|L\*H|H\*|L\*|H\*!H))`
	optional := fmt.Sprintf(`(\(%s\))`, accent)
	accent = fmt.Sprintf(`(%s|%s)`, accent, optional)
	initial := `(%|%H|%L)`
	final := `(%|H%|L%)`
	ip := fmt.Sprintf(`(%s (%s )+%s)`, initial, accent, final)
	return regexp2.MustCompile(fmt.Sprintf(`^%s( %s)*$`, ip, ip), regexp2.None)
}()

// WellFormed reports whether s is a sequence of complete intonational phrases, each an
// initial boundary, one or more accents and a final boundary, separated by single spaces.
func WellFormed(s string) bool {
	ok, err := wellFormed.MatchString(s)
	return err == nil && ok
}
