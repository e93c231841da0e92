package ports

import (
	"context"

	"github.com/aretw0/todi/pkg/domain"
)

// Recognizer runs OCR on the annotation region of an image file.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// Synthesizer resynthesises an exercise utterance with a new tone sequence and returns
// the resulting synthetic record. suffix distinguishes variants of the same exercise.
type Synthesizer interface {
	Synthesize(ctx context.Context, exercise domain.Record, tokens []string, suffix string) (domain.Record, error)
}
