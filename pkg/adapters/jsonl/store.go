package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aretw0/todi/pkg/domain"
)

// DefaultPath is where the crawler writes its index.
var DefaultPath = filepath.Join("scraped", "index.jsonlines")

// Store implements ports.RecordStore on a JSON lines file: one record object per line.
type Store struct {
	Path string
}

// New creates a Store for path. If path is empty, it defaults to DefaultPath.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// List reads every record from the file. Blank lines are skipped and a missing file
// reads as an empty store.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Record{}, nil
		}
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}
	defer f.Close()

	records := []domain.Record{}
	reader := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("failed to read record store: %w", readErr)
		}
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			var m map[string]any
			if err := json.Unmarshal(trimmed, &m); err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNo, domain.ErrInvalidRecord, err)
			}
			r, err := domain.DecodeRecord(m)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			records = append(records, r)
		}
		if readErr == io.EOF {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Replace rewrites the file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Replace(ctx context.Context, records []domain.Record) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure store directory: %w", err)
	}

	var buf bytes.Buffer
	if err := encode(&buf, records); err != nil {
		return err
	}

	// same directory, so the rename stays on one filesystem
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if runtime.GOOS == "windows" {
		if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing store for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to rename temp file to store: %w", err)
	}
	return nil
}

// Append adds records to the end of the file, creating it if needed.
func (s *Store) Append(ctx context.Context, records ...domain.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to ensure store directory: %w", err)
	}

	var buf bytes.Buffer
	if err := encode(&buf, records); err != nil {
		return err
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open record store for append: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append records: %w", err)
	}
	return f.Close()
}

// Snapshot copies the current file to "<path>.<suffix>" and returns the copy's path.
// A missing store is not an error; nothing is copied.
func (s *Store) Snapshot(ctx context.Context, suffix string) (string, error) {
	suffix = strings.TrimPrefix(suffix, ".")
	dest := s.Path + "." + suffix

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read record store: %w", err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return dest, nil
}

func encode(buf *bytes.Buffer, records []domain.Record) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r.Map()); err != nil {
			return fmt.Errorf("failed to marshal record %q: %w", r.Index, err)
		}
	}
	return nil
}
