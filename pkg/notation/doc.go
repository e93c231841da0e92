/*
Package notation implements the two algorithmic pieces of the TODI toolkit.

TODI (Transcription of Dutch Intonation) annotates an intonational phrase as an ordered
list of tokens: pitch accents (H*, L*H, !H*L, ...), boundary tones (%L, H%, ...) and empty
placeholders for positions where no tone is realised.

# Normalizer

Normalizer repairs OCR output of an annotation image. It separates notation lines from
word lines and runs the notation through a fixed, ordered correction pipeline:

  - literal substring replacement, longest pattern first
  - context-sensitive regex repairs
  - per-token replacement
  - whitespace normalisation

The stages are applied in that order on the accumulated string, so the output of one
correction may be rewritten by a later one. Several garbled inputs rely on this.

# Generator

Generator produces alternative tone sequences that keep the positions of accents,
boundaries and placeholders of an original sequence while resampling their values from
fixed weight tables. It never emits the original, never emits a duplicate, only allows
H*!H as the final accent and only downsteps after a first high accent.
*/
package notation
