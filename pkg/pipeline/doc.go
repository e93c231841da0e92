/*
Package pipeline runs the batch passes over the annotation record store.

  - OCR reads example images, normalises the recognised text and records words_ocr and
    todi_ocr.
  - Resynthesize generates alternative tone sequences for every exercise and stores the
    synthetic records returned by the synthesis service.
  - Check reports which OCR transcriptions match the reference grammar.

Passes that rewrite the store take a snapshot first when the store supports it.
*/
package pipeline
