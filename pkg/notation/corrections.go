package notation

import (
	"sort"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

type replacement struct {
	from, to string
}

// literalCorrections maps known OCR garbles to notation. Declaration order breaks ties
// between keys of equal length.
var literalCorrections = []replacement{
	{"(L)", "(L*)"},
	{"(H)", "(H*)"},
	{"L-", "L*"},
	{"°", "*"},
	{"IH", "!H"},
	{"MH", "!H"},
	{`HE"`, "H*"},
	{"HH", "H*!H"},
	{"HE", "H*"},
	{"HEL", "H*L"},
	{"HS", "H*"},
	{"HT", "H*"},
	{"H-", "H*"},
	{"%LH*", "%L H*"},
	{"LH", "L*H"},
	{"HL", "H*L"},
	{"%L_", "%L "},
	{"Yol", "%L"},
	{`H"`, "H*"},
	{"__H%", "H%"},
	{"e%L", "%L"},
	{"H2", "H%"},
	{"{", "("},
	{"9", "L%"},
	{"VL", "%L"},
	{"Lol", "%L"},
}

// orderedLiterals holds literalCorrections sorted by descending key length in
// characters, so that a longer pattern is replaced before a shorter one inside it.
var orderedLiterals = func() []replacement {
	out := make([]replacement, len(literalCorrections))
	copy(out, literalCorrections)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i].from) > utf8.RuneCountInString(out[j].from)
	})
	return out
}()

type regexRepair struct {
	re *regexp2.Regexp
	to string
}

// The lookaheads keep rules from firing inside ordinary words or on accents that are
// already complete.
var regexRepairs = []regexRepair{
	{regexp2.MustCompile(`H\* !H(?!\*)`, regexp2.None), "H*!H"},
	{regexp2.MustCompile(`L\*H\*L`, regexp2.None), "L*HL"},
	{regexp2.MustCompile(`H\*L\*H`, regexp2.None), "H*LH"},
	{regexp2.MustCompile(`He(?![a-z])`, regexp2.None), "H*"},
	{regexp2.MustCompile(`Ho(?![a-z])`, regexp2.None), "H%"},
	{regexp2.MustCompile(`Hi(?![a-z])`, regexp2.None), "H*"},
}

// tokenCorrections replaces whole tokens. An empty replacement deletes the token.
var tokenCorrections = map[string]string{
	"-": "H*",
	"_": "",
}
