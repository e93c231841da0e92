/*
Package domain contains the annotation record model shared by the stores, collaborators
and pipelines of the TODI toolkit.

A Record is one line of the record store. Only a handful of fields are typed; every other
field written by the crawler or the synthesis collaborator is carried through untouched in
Record.Extra, so a pipeline that rewrites the store never loses data it does not own.

# Record Types

  - example: an annotated example from a reference page, with an image to OCR.
  - exercise: a transcription exercise with a structured answer sequence.
  - synthetic: a resynthesised variant of an exercise.
*/
package domain
