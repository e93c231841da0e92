package pipeline

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aretw0/todi/internal/logging"
	"github.com/aretw0/todi/pkg/notation"
)

const (
	DefaultPerExercise = 5
	DefaultSeed        = 12345
	DefaultDelay       = time.Second
)

type options struct {
	logger      *slog.Logger
	dataDir     string
	normalizer  *notation.Normalizer
	perExercise int
	rng         notation.Rand
	delay       time.Duration
}

// Option configures a pipeline.
type Option func(*options)

// WithLogger sets the pipeline logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDataDir sets the directory media paths in records are relative to.
func WithDataDir(dir string) Option {
	return func(o *options) {
		o.dataDir = dir
	}
}

// WithNormalizer replaces the OCR text normalizer.
func WithNormalizer(n *notation.Normalizer) Option {
	return func(o *options) {
		if n != nil {
			o.normalizer = n
		}
	}
}

// WithPerExercise sets how many synthetic variants are requested per exercise.
func WithPerExercise(n int) Option {
	return func(o *options) {
		o.perExercise = n
	}
}

// WithSeed seeds the random source shared by the whole resynthesis batch.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source directly.
func WithRand(r notation.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithDelay sets the pause between synthesis calls.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.delay = d
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:      logging.NewNop(),
		dataDir:     ".",
		normalizer:  notation.NewNormalizer(),
		perExercise: DefaultPerExercise,
		delay:       DefaultDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(DefaultSeed, DefaultSeed))
	}
	return o
}
