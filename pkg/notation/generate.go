package notation

import (
	"iter"
	"strings"
)

// Rand is the random source a Generator draws from. *math/rand/v2.Rand satisfies it.
// A Rand is not safe for concurrent use unless the implementation says so; callers
// sharing one across goroutines must serialise access.
type Rand interface {
	Float64() float64
}

// Generator produces alternative tone sequences parallel to an original one.
type Generator struct {
	rng Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Alternatives lazily yields up to k sequences that keep the accent, boundary and
// placeholder positions of original but resample their tones. Every yielded sequence
// differs from original and from the others. Sampling stops after 10·k attempts, so
// originals with few degrees of freedom can yield fewer than k sequences.
func (g *Generator) Alternatives(original []string, k int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if k <= 0 {
			return
		}
		seen := map[string]struct{}{key(original): {}}
		produced := 0
		for attempt := 0; produced < k && attempt < attemptFactor*k; attempt++ {
			seq := g.sample(original)
			id := key(seq)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			produced++
			if !yield(seq) {
				return
			}
		}
	}
}

// sampleState is threaded through one pass over the positions of a sequence.
type sampleState struct {
	downstepLicensed bool
}

func (g *Generator) sample(original []string) []string {
	lastAccent := -1
	for i, tok := range original {
		if Classify(tok) == KindAccent {
			lastAccent = i
		}
	}

	var st sampleState
	out := make([]string, len(original))
	for i, tok := range original {
		switch Classify(tok) {
		case KindAccent:
			out[i] = g.accent(&st, i < lastAccent)
		case KindInitialBoundary:
			out[i] = choose(g.rng, initialSet.values, initialSet.weights)
		case KindFinalBoundary:
			out[i] = choose(g.rng, finalSet.values, finalSet.weights)
		default:
			out[i] = ""
		}
	}
	return out
}

// accent draws the accent for one position and advances st. H*!H is excluded when
// another accent follows in the original.
func (g *Generator) accent(st *sampleState, moreAccents bool) string {
	weights := accentSet.weights
	if moreAccents {
		weights = nonFinalAccentWeights
	}
	a := choose(g.rng, accentSet.values, weights)
	if strings.HasPrefix(a, "H") {
		if st.downstepLicensed && g.rng.Float64() < downstepProb {
			a = downstep + a
		}
		st.downstepLicensed = true
	}
	return a
}

// key identifies a sequence by value. The unit separator cannot occur in tokens read
// from the stored form.
func key(seq []string) string {
	return strings.Join(seq, "\x1f")
}
