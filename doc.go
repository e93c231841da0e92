/*
Package todi prepares training data for Transcription of Dutch Intonation (ToDI) models.

ToDI writes the intonation of an utterance as a sequence of tones: initial boundaries
such as %L, pitch accents such as H* or L*H, and final boundaries such as L%. The
toolkit turns OCR text of annotated example images into clean ToDI notation and
generates alternative tone sequences that a synthesis service renders as new
training utterances.

# Concept

The notation core lives in pkg/notation and has no I/O: a Normalizer corrects raw OCR
text and a Generator samples constrained alternatives from a caller supplied random
source. Everything around it (the record store, the OCR engine, the synthesis service)
sits behind the interfaces in pkg/ports, with adapters in pkg/adapters and the batch
passes in pkg/pipeline.

# Usage

	res, ok := todi.Normalize("dag meisje\n%L He LH H%")
	if ok {
		fmt.Println(res.Words)    // dag meisje
		fmt.Println(res.Notation) // %L H* L*H H%
	}

	rng := rand.New(rand.NewPCG(12345, 12345))
	for seq := range todi.Alternatives(rng, []string{"%L", "H*", "L%"}, 5) {
		fmt.Println(notation.JoinSep(seq))
	}

The todi command wraps the same operations and the batch passes:

	todi ocr             # fill words_ocr and todi_ocr from example images
	todi resynth         # synthesise alternatives for every exercise
	todi export          # write the record store as CSV
	todi serve           # HTTP API with Prometheus metrics
*/
package todi
