package domain

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/aretw0/todi/pkg/notation"
	"github.com/mitchellh/mapstructure"
)

// RecordType distinguishes where a record came from.
type RecordType string

const (
	TypeExample   RecordType = "example"
	TypeExercise  RecordType = "exercise"
	TypeSynthetic RecordType = "synthetic"
)

// Record is one entry of the annotation record store.
type Record struct {
	Index      string     `mapstructure:"index"`
	Type       RecordType `mapstructure:"type"`
	Words      string     `mapstructure:"words"`
	WordsSep   string     `mapstructure:"words_sep"`
	Todi       string     `mapstructure:"todi"`
	TodiSep    string     `mapstructure:"todi_sep"`
	WordsOCR   string     `mapstructure:"words_ocr"`
	TodiOCR    string     `mapstructure:"todi_ocr"`
	ExerciseID string     `mapstructure:"exercise_id"`
	PageURL    string     `mapstructure:"page_url"`
	PageTitle  string     `mapstructure:"page_title"`
	SoundURL   string     `mapstructure:"sound_url"`
	SoundFile  string     `mapstructure:"sound_file"`
	ImageURL   string     `mapstructure:"image_url"`
	ImageFile  string     `mapstructure:"image_file"`

	// Extra holds every field without a typed counterpart.
	Extra map[string]any `mapstructure:",remain"`
}

// DecodeRecord builds a Record from a decoded store line. Scalar fields are converted
// weakly, so a numeric index becomes its string form.
func DecodeRecord(m map[string]any) (Record, error) {
	var r Record
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &r,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Record{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if len(r.Extra) == 0 {
		r.Extra = nil
	}
	return r, nil
}

func (r Record) fields() [][2]string {
	return [][2]string{
		{KeyIndex, r.Index},
		{KeyType, string(r.Type)},
		{KeyWords, r.Words},
		{KeyWordsSep, r.WordsSep},
		{KeyTodi, r.Todi},
		{KeyTodiSep, r.TodiSep},
		{KeyWordsOCR, r.WordsOCR},
		{KeyTodiOCR, r.TodiOCR},
		{KeyExerciseID, r.ExerciseID},
		{KeyPageURL, r.PageURL},
		{KeyPageTitle, r.PageTitle},
		{KeySoundURL, r.SoundURL},
		{KeySoundFile, r.SoundFile},
		{KeyImageURL, r.ImageURL},
		{KeyImageFile, r.ImageFile},
	}
}

// Map flattens the record back into store form. Empty typed fields are left out.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.Extra)+8)
	maps.Copy(m, r.Extra)
	for _, f := range r.fields() {
		if f[1] != "" {
			m[f[0]] = f[1]
		}
	}
	return m
}

// Field returns the value of a named field as text, or "" if it is absent.
func (r Record) Field(name string) string {
	for _, f := range r.fields() {
		if f[0] == name {
			return f[1]
		}
	}
	v, ok := r.Extra[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Clone returns a copy that shares no map with r.
func (r Record) Clone() Record {
	r.Extra = maps.Clone(r.Extra)
	return r
}

// TodiTokens returns the stored TODI sequence, placeholders included.
func (r Record) TodiTokens() []string {
	return notation.SplitSep(r.TodiSep)
}

// SetTodi stores tokens in both the separated and the display field.
func (r *Record) SetTodi(tokens []string) {
	r.TodiSep = notation.JoinSep(tokens)
	r.Todi = notation.JoinDisplay(tokens)
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	rec, err := DecodeRecord(m)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}
