package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aretw0/todi/pkg/domain"
	"github.com/aretw0/todi/pkg/notation"
	"github.com/aretw0/todi/pkg/ports"
)

// BackupSuffixResynth names the snapshot taken before a resynthesis pass.
const BackupSuffixResynth = "resynth_backup"

// ResynthStats summarises a resynthesis pass.
type ResynthStats struct {
	Backup      string
	Exercises   int
	Synthesized int
	Failed      int
	Skipped     int
	// UnderYield counts exercises that got fewer variants than requested because the
	// tone space was too small.
	UnderYield int
}

// Resynthesize appends synthetic variants of every exercise record to the store.
type Resynthesize struct {
	store ports.RecordStore
	synth ports.Synthesizer
	opts  options
}

// NewResynthesize creates a resynthesis pass.
func NewResynthesize(store ports.RecordStore, synth ports.Synthesizer, opts ...Option) *Resynthesize {
	return &Resynthesize{store: store, synth: synth, opts: newOptions(opts)}
}

// Run generates alternatives for each exercise from one random source shared by the whole
// batch, so a fixed seed reproduces the batch.
func (p *Resynthesize) Run(ctx context.Context) (ResynthStats, error) {
	var stats ResynthStats
	log := p.opts.logger

	backup, err := snapshot(ctx, p.store, BackupSuffixResynth)
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

	gen := notation.NewGenerator(p.opts.rng)
	calls := 0
	for _, ex := range records {
		if ex.Type != domain.TypeExercise {
			continue
		}
		stats.Exercises++

		tokens := ex.TodiTokens()
		if len(tokens) == 0 {
			stats.Skipped++
			log.Warn("Skipping exercise", "index", ex.Index, "error", domain.ErrNoTodi)
			continue
		}

		n := 0
		for seq := range gen.Alternatives(tokens, p.opts.perExercise) {
			if calls > 0 {
				if err := sleep(ctx, p.opts.delay); err != nil {
					return stats, err
				}
			}
			calls++
			suffix := strconv.Itoa(n)
			n++

			rec, err := p.synth.Synthesize(ctx, ex, seq, suffix)
			if err != nil {
				if ctx.Err() != nil {
					return stats, ctx.Err()
				}
				stats.Failed++
				log.Warn("Synthesis failed", "index", ex.Index, "todi", notation.JoinDisplay(seq), "error", err)
				continue
			}
			if err := p.store.Append(ctx, rec); err != nil {
				return stats, fmt.Errorf("failed to append synthetic record: %w", err)
			}
			stats.Synthesized++
			log.Debug("Synthesized", "index", rec.Index, "todi", rec.Todi)
		}
		if n < p.opts.perExercise {
			stats.UnderYield++
			log.Info("Fewer variants than requested", "index", ex.Index, "want", p.opts.perExercise, "got", n)
		}
	}
	return stats, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
