/*
Package ports defines the driven ports (interfaces) of the TODI toolkit.

These interfaces decouple the pipelines from the record store backend and from the
external collaborators that do OCR and speech synthesis.

# Key Interfaces

  - RecordStore: reads and writes annotation records (JSON lines file, Redis, memory).
  - Snapshotter: optionally backs up a store before a pipeline rewrites it.
  - Recognizer: turns an annotation image into raw OCR text.
  - Synthesizer: asks the synthesis service for audio and image of a new TODI sequence.
*/
package ports
