package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/todi/internal/config"
	"github.com/aretw0/todi/internal/presentation/tui"
	"github.com/aretw0/todi/pkg/export"
	"github.com/aretw0/todi/pkg/pipeline"
	"github.com/aretw0/todi/pkg/ports"
)

// RunOCR fills words_ocr and todi_ocr of the example records.
func RunOCR(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	logger := createLogger(cfg, opts.Debug)
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	stats, err := pipeline.NewOCR(store, newRecognizer(cfg),
		pipeline.WithDataDir(cfg.DataDir),
		pipeline.WithLogger(logger),
	).Run(ctx)
	if err != nil {
		return err
	}
	printSystemMessage(opts.out(), "OCR: %d examples, %d recognized, %d too short, %d failed.",
		stats.Examples, stats.Recognized, stats.TooShort, stats.Failed)
	return refreshCSV(ctx, cfg, store, opts.out())
}

// RunResynth appends synthetic variants of every exercise to the store.
func RunResynth(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	logger := createLogger(cfg, opts.Debug)
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	s := cfg.Synthesis
	stats, err := pipeline.NewResynthesize(store, newSynthesizer(cfg, logger),
		pipeline.WithPerExercise(s.PerExercise),
		pipeline.WithSeed(s.Seed),
		pipeline.WithDelay(s.Delay),
		pipeline.WithLogger(logger),
	).Run(ctx)
	if err != nil {
		return err
	}
	printSystemMessage(opts.out(), "Resynthesis: %d exercises, %d synthesized, %d failed, %d skipped, %d under-yield.",
		stats.Exercises, stats.Synthesized, stats.Failed, stats.Skipped, stats.UnderYield)
	return refreshCSV(ctx, cfg, store, opts.out())
}

// refreshCSV rewrites the CSV next to a JSON lines store after a pass changed it.
func refreshCSV(ctx context.Context, cfg config.Config, store ports.RecordStore, w io.Writer) error {
	if cfg.Store.Backend != config.BackendJSONL {
		return nil
	}
	records, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	path := export.PathFor(cfg.StorePath())
	if err := export.WriteFile(path, records); err != nil {
		return err
	}
	printSystemMessage(w, "Exported %d records to %s.", len(records), path)
	return nil
}

// RunExport writes the record store as CSV. An empty path writes next to the store file.
func RunExport(ctx context.Context, opts Options, path string) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	if path == "" {
		path = export.PathFor(cfg.StorePath())
	}
	if err := export.WriteFile(path, records); err != nil {
		return err
	}
	printSystemMessage(opts.out(), "Exported %d records to %s.", len(records), path)
	return nil
}

// RunCheck prints the OCR transcriptions that do not match the reference grammar.
func RunCheck(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	rep := pipeline.Check(records)
	w := opts.out()
	if opts.Pretty {
		out, err := tui.NewRenderer()(tui.CheckReport(rep))
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprint(w, out)
		return nil
	}
	for _, r := range rep.Malformed {
		fmt.Fprintf(w, "%s\t%s\n", r.Index, r.TodiOCR)
	}
	printSystemMessage(w, "%d of %d OCR transcriptions are well-formed.", rep.WellFormed, rep.Checked)
	return nil
}
