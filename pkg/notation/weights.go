package notation

// weightedSet is a closed set of tokens with relative sampling weights.
type weightedSet struct {
	values  []string
	weights []float64
}

// Accent weights loosely follow corpus frequencies of ToDI accents; H*!H is rare and
// only allowed phrase-finally.
var (
	accentSet = weightedSet{
		values:  []string{"H*", "L*", "H*L", "L*H", "H*LH", "L*HL", "H*!H"},
		weights: []float64{200, 50, 200, 200, 30, 200, 20},
	}
	initialSet = weightedSet{
		values:  []string{"%H", "%L", "%HL"},
		weights: []float64{30, 50, 10},
	}
	finalSet = weightedSet{
		values:  []string{"H%", "L%", "%"},
		weights: []float64{30, 50, 20},
	}

	// nonFinalAccentWeights is accentSet with H*!H disabled.
	nonFinalAccentWeights = []float64{200, 50, 200, 200, 30, 200, 0}
)

const (
	downstepProb  = 0.3
	attemptFactor = 10
)

// choose picks one value using a single draw, scanning cumulative weights for the first
// bound above the draw. Zero-weight values are never chosen.
func choose(rng Rand, values []string, weights []float64) string {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if x < cum {
			return values[i]
		}
	}
	// x == total only through rounding; fall back to the last value with weight
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return values[i]
		}
	}
	return values[len(values)-1]
}
