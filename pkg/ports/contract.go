package ports

import (
	"context"
	"testing"

	"github.com/aretw0/todi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRecordStoreContract runs a suite of tests to verify that a RecordStore implementation
// adheres to the defined interface contract. The store must start empty.
func RunRecordStoreContract(t *testing.T, store RecordStore) {
	ctx := context.Background()

	exercise := domain.Record{
		Index:      "239",
		Type:       domain.TypeExercise,
		ExerciseID: "ex3b_2",
		Extra:      map[string]any{"custom": "kept"},
	}
	exercise.SetTodi([]string{"%L", "H*", "", "H%"})
	example := domain.Record{Index: "12", Type: domain.TypeExample, ImageFile: "examples/12.png"}

	t.Run("Empty", func(t *testing.T) {
		records, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Append and List", func(t *testing.T) {
		require.NoError(t, store.Append(ctx, exercise))
		require.NoError(t, store.Append(ctx, example))

		records, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, exercise.Map(), records[0].Map(), "order and unknown fields are preserved")
		assert.Equal(t, example.Map(), records[1].Map())
	})

	t.Run("Replace", func(t *testing.T) {
		updated := example
		updated.TodiOCR = "%L H* L%"
		require.NoError(t, store.Replace(ctx, []domain.Record{updated}))

		records, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "%L H* L%", records[0].TodiOCR)
	})

	t.Run("List returns copies", func(t *testing.T) {
		records, err := store.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, records)
		records[0].TodiOCR = "mutated"

		again, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "%L H* L%", again[0].TodiOCR)
	})

	t.Run("Append nothing", func(t *testing.T) {
		require.NoError(t, store.Append(ctx))
		records, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("Replace with empty", func(t *testing.T) {
		require.NoError(t, store.Replace(ctx, nil))
		records, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
