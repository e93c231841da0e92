// Package export writes annotation records in tabular form.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/aretw0/todi/pkg/domain"
)

// Columns is the column order of the CSV export. The index comes first.
var Columns = []string{
	domain.KeyIndex,
	domain.KeyWords,
	domain.KeyTodi,
	domain.KeyWordsOCR,
	domain.KeyTodiOCR,
	domain.KeySoundFile,
	domain.KeyImageFile,
	domain.KeyType,
	domain.KeyPageTitle,
	domain.KeyExerciseID,
	domain.KeySoundURL,
	domain.KeyImageURL,
	domain.KeyPageURL,
	domain.KeyWordsSep,
	domain.KeyTodiSep,
}

// Header returns Columns followed by the sorted union of the extra keys of records.
func Header(records []domain.Record) []string {
	extra := make(map[string]struct{})
	for _, r := range records {
		for k := range r.Extra {
			if !slices.Contains(Columns, k) {
				extra[k] = struct{}{}
			}
		}
	}
	return append(slices.Clone(Columns), slices.Sorted(maps.Keys(extra))...)
}

// WriteCSV writes a header and one row per record. Absent fields are empty cells.
func WriteCSV(w io.Writer, records []domain.Record) error {
	header := Header(records)
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	row := make([]string, len(header))
	for _, r := range records {
		for i, col := range header {
			row[i] = r.Field(col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %q: %w", r.Index, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// PathFor returns the CSV path that sits next to a JSON lines store.
func PathFor(storePath string) string {
	if strings.HasSuffix(storePath, ".jsonlines") {
		return strings.TrimSuffix(storePath, ".jsonlines") + ".csv"
	}
	return storePath + ".csv"
}

// WriteFile writes records as CSV to path, replacing any existing file.
func WriteFile(path string, records []domain.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
