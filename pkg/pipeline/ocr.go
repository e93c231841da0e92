package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/todi/pkg/domain"
	"github.com/aretw0/todi/pkg/ports"
)

// BackupSuffixOCR names the snapshot taken before an OCR pass.
const BackupSuffixOCR = "ocr_backup"

// OCRStats summarises an OCR pass.
type OCRStats struct {
	Backup     string
	Examples   int
	Recognized int
	TooShort   int
	Failed     int
}

// OCR fills words_ocr and todi_ocr of example records from their images.
type OCR struct {
	store      ports.RecordStore
	recognizer ports.Recognizer
	opts       options
}

// NewOCR creates an OCR pass.
func NewOCR(store ports.RecordStore, recognizer ports.Recognizer, opts ...Option) *OCR {
	return &OCR{store: store, recognizer: recognizer, opts: newOptions(opts)}
}

// Run recognises every example image and rewrites the store. Records whose image cannot
// be read are kept unchanged.
func (p *OCR) Run(ctx context.Context) (OCRStats, error) {
	var stats OCRStats
	log := p.opts.logger

	backup, err := snapshot(ctx, p.store, BackupSuffixOCR)
	if err != nil {
		return stats, err
	}
	stats.Backup = backup
	if backup != "" {
		log.Info("Made a backup of the record store", "path", backup)
	}

	records, err := p.store.List(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to list records: %w", err)
	}

	for i := range records {
		rec := &records[i]
		if rec.Type != domain.TypeExample || rec.ImageFile == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Examples++

		imagePath := filepath.Join(p.opts.dataDir, filepath.FromSlash(rec.ImageFile))
		log.Debug("Recognizing", "index", rec.Index, "image", imagePath)
		raw, err := p.recognizer.Recognize(ctx, imagePath)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.Failed++
			log.Warn("OCR failed", "index", rec.Index, "image", imagePath, "error", err)
			continue
		}

		res, ok := p.opts.normalizer.Normalize(raw)
		if !ok {
			stats.TooShort++
			continue
		}
		stats.Recognized++
		if res.Words != "" {
			rec.WordsOCR = res.Words
		}
		if res.Notation != "" {
			rec.TodiOCR = res.Notation
		}
	}

	if err := p.store.Replace(ctx, records); err != nil {
		return stats, fmt.Errorf("failed to write records: %w", err)
	}
	return stats, nil
}

func snapshot(ctx context.Context, store ports.RecordStore, suffix string) (string, error) {
	s, ok := store.(ports.Snapshotter)
	if !ok {
		return "", nil
	}
	dest, err := s.Snapshot(ctx, suffix)
	if err != nil {
		return "", fmt.Errorf("failed to back up record store: %w", err)
	}
	return dest, nil
}
