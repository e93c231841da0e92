package domain

import "errors"

// ErrInvalidExerciseID is returned when an exercise_id does not have the "ex<n>_<m>" shape
// the synthesis service expects.
var ErrInvalidExerciseID = errors.New("invalid exercise id")

// ErrNoTodi is returned when a record has no stored TODI sequence to work from.
var ErrNoTodi = errors.New("record has no todi sequence")

// ErrInvalidRecord is returned when a stored line cannot be decoded into a Record.
var ErrInvalidRecord = errors.New("invalid record")
