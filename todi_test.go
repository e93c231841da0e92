package todi

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version)
}

func TestNormalize_TooShort(t *testing.T) {
	_, ok := Normalize("%L")
	assert.False(t, ok)
}

func TestAlternatives_MatchesGenerator(t *testing.T) {
	collect := func(seed uint64) [][]string {
		var out [][]string
		for seq := range Alternatives(rand.New(rand.NewPCG(seed, seed)), []string{"%L", "H*", "L%"}, 4) {
			out = append(out, seq)
		}
		return out
	}
	assert.Equal(t, collect(9), collect(9))
	assert.NotEmpty(t, collect(9))
}

func TestWellFormed(t *testing.T) {
	assert.True(t, WellFormed("%L H* L%"))
	assert.False(t, WellFormed("%L H* L"))
}
