package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/todi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	records := []domain.Record{
		{Index: "239", Type: domain.TypeExercise, Words: "dag, meisje", TodiSep: "%L|H*|H%", Todi: "%L H* H%"},
		{Index: "a1", Type: domain.TypeExample, TodiOCR: "%L H* L%"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, []string{"239", "dag, meisje", "%L H* H%", "", "", "", "", "exercise", "", "", "", "", "", "", "%L|H*|H%"}, rows[1])
	assert.Equal(t, "%L H* L%", rows[2][4])
	assert.Len(t, rows[2], len(Columns))
}

func TestWriteCSV_ExtraColumns(t *testing.T) {
	records := []domain.Record{
		{Index: "1", Extra: map[string]any{"speaker": "anna", "score": 4.5}},
		{Index: "2", Extra: map[string]any{"alignment": "ok"}},
		{Index: "3"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	n := len(Columns)
	assert.Equal(t, Columns, rows[0][:n])
	assert.Equal(t, []string{"alignment", "score", "speaker"}, rows[0][n:])
	assert.Equal(t, []string{"", "4.5", "anna"}, rows[1][n:])
	assert.Equal(t, []string{"ok", "", ""}, rows[2][n:])
	assert.Equal(t, []string{"", "", ""}, rows[3][n:])
}

func TestHeader_NoExtra(t *testing.T) {
	assert.Equal(t, Columns, Header([]domain.Record{{Index: "1"}}))
}

func TestPathFor(t *testing.T) {
	assert.Equal(t, filepath.Join("scraped", "index.csv"), PathFor(filepath.Join("scraped", "index.jsonlines")))
	assert.Equal(t, "records.json.csv", PathFor("records.json"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.csv")
	require.NoError(t, WriteFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "index,words,todi,words_ocr,todi_ocr,sound_file,image_file,type,page_title,"+
		"exercise_id,sound_url,image_url,page_url,words_sep,todi_sep\n", string(data))
}
