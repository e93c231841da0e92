package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aretw0/todi/pkg/adapters/memory"
	"github.com/aretw0/todi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecognizer struct {
	texts map[string]string
	calls []string
}

func (f *fakeRecognizer) Recognize(_ context.Context, imagePath string) (string, error) {
	f.calls = append(f.calls, imagePath)
	text, ok := f.texts[filepath.Base(imagePath)]
	if !ok {
		return "", errors.New("no such image")
	}
	return text, nil
}

// snapshotStore records snapshot requests on top of the memory store.
type snapshotStore struct {
	*memory.Store
	suffixes []string
}

func (s *snapshotStore) Snapshot(_ context.Context, suffix string) (string, error) {
	s.suffixes = append(s.suffixes, suffix)
	return "mem." + suffix, nil
}

func TestOCR_Run(t *testing.T) {
	store := &snapshotStore{Store: memory.NewStore(
		domain.Record{Index: "1", Type: domain.TypeExample, ImageFile: "images/1.gif", TodiOCR: "old"},
		domain.Record{Index: "2", Type: domain.TypeExample, ImageFile: "images/2.gif"},
		domain.Record{Index: "3", Type: domain.TypeExample, ImageFile: "images/3.gif", WordsOCR: "keep"},
		domain.Record{Index: "4", Type: domain.TypeExample, ImageFile: "images/missing.gif", TodiOCR: "untouched"},
		domain.Record{Index: "5", Type: domain.TypeExercise, ImageFile: "images/1.gif"},
		domain.Record{Index: "6", Type: domain.TypeExample},
	)}
	rec := &fakeRecognizer{texts: map[string]string{
		"1.gif": "dag meisje\n%L He LH H%",
		"2.gif": "abc",
		"3.gif": "%LH* H%",
	}}

	stats, err := NewOCR(store, rec, WithDataDir("scraped")).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OCRStats{Backup: "mem.ocr_backup", Examples: 4, Recognized: 2, TooShort: 1, Failed: 1}, stats)
	assert.Equal(t, []string{BackupSuffixOCR}, store.suffixes)
	assert.Equal(t, filepath.Join("scraped", "images", "1.gif"), rec.calls[0])
	assert.Len(t, rec.calls, 4)

	records, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, "dag meisje", records[0].WordsOCR)
	assert.Equal(t, "%L H* L*H H%", records[0].TodiOCR)

	assert.Empty(t, records[1].WordsOCR)
	assert.Empty(t, records[1].TodiOCR)

	assert.Equal(t, "keep", records[2].WordsOCR, "empty words must not overwrite")
	assert.Equal(t, "%L H* H%", records[2].TodiOCR)

	assert.Equal(t, "untouched", records[3].TodiOCR)
	assert.Empty(t, records[4].TodiOCR)
}

func TestOCR_Run_CancelledContext(t *testing.T) {
	store := memory.NewStore(domain.Record{Index: "1", Type: domain.TypeExample, ImageFile: "a.gif"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOCR(store, &fakeRecognizer{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
