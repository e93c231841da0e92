package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/todi/pkg/adapters/memory"
	"github.com/aretw0/todi/pkg/domain"
	"github.com/aretw0/todi/pkg/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynth struct {
	failOn map[int]bool
	calls  int
	seqs   [][]string
}

func (f *fakeSynth) Synthesize(_ context.Context, ex domain.Record, tokens []string, suffix string) (domain.Record, error) {
	n := f.calls
	f.calls++
	f.seqs = append(f.seqs, tokens)
	if f.failOn[n] {
		return domain.Record{}, errors.New("service unavailable")
	}
	rec := domain.Record{
		Index:      ex.Index + "-" + suffix,
		Type:       domain.TypeSynthetic,
		ExerciseID: ex.ExerciseID,
	}
	rec.SetTodi(tokens)
	return rec, nil
}

func exerciseStore() *snapshotStore {
	return &snapshotStore{Store: memory.NewStore(
		domain.Record{Index: "1", Type: domain.TypeExample, TodiSep: "%L|H*|L%"},
		domain.Record{Index: "2", Type: domain.TypeExercise, ExerciseID: "ex_ab", TodiSep: "%L|Mijn|H*|Mooie|L*H|L%"},
		domain.Record{Index: "3", Type: domain.TypeExercise, ExerciseID: "ex_cd"},
		domain.Record{Index: "4", Type: domain.TypeExercise, ExerciseID: "ex_ef", TodiSep: "%L"},
	)}
}

func TestResynthesize_Run(t *testing.T) {
	store := exerciseStore()
	synth := &fakeSynth{failOn: map[int]bool{1: true}}

	stats, err := NewResynthesize(store, synth, WithPerExercise(3), WithSeed(7), WithDelay(0)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "mem.resynth_backup", stats.Backup)
	assert.Equal(t, 3, stats.Exercises)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, synth.calls-1, stats.Synthesized)
	assert.Equal(t, 1, stats.UnderYield, "%L alone has only two alternatives")
	assert.Equal(t, []string{BackupSuffixResynth}, store.suffixes)

	records, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 4+stats.Synthesized)

	appended := records[4:]
	assert.Equal(t, "2-0", appended[0].Index)
	assert.Equal(t, "2-2", appended[1].Index, "suffix counts the failed variant too")
	for _, r := range appended {
		assert.Equal(t, domain.TypeSynthetic, r.Type)
	}

	original := []string{"%L", "Mijn", "H*", "Mooie", "L*H", "L%"}
	for _, seq := range synth.seqs[:3] {
		require.Len(t, seq, len(original))
		assert.NotEqual(t, original, seq)
		assert.Empty(t, seq[1], "placeholders are blanked")
		assert.Equal(t, notation.KindAccent, notation.Classify(seq[2]))
	}
}

func TestResynthesize_Run_Deterministic(t *testing.T) {
	run := func() [][]string {
		synth := &fakeSynth{}
		_, err := NewResynthesize(exerciseStore(), synth, WithSeed(42), WithDelay(0)).Run(context.Background())
		require.NoError(t, err)
		return synth.seqs
	}
	assert.Equal(t, run(), run())
}

func TestResynthesize_Run_DelayHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	synth := &fakeSynth{}
	_, err := NewResynthesize(exerciseStore(), synth, WithDelay(time.Hour)).Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, synth.calls, "first call is not delayed")
}

func TestCheck(t *testing.T) {
	rep := Check([]domain.Record{
		{Index: "1", TodiOCR: "%L H* L%"},
		{Index: "2", TodiOCR: "%L H* qq"},
		{Index: "3"},
	})
	assert.Equal(t, 2, rep.Checked)
	assert.Equal(t, 1, rep.WellFormed)
	require.Len(t, rep.Malformed, 1)
	assert.Equal(t, "2", rep.Malformed[0].Index)
}
