package ports

import (
	"context"

	"github.com/aretw0/todi/pkg/domain"
)

// RecordStore persists annotation records in insertion order.
type RecordStore interface {
	// List returns all records in store order.
	List(ctx context.Context) ([]domain.Record, error)

	// Replace overwrites the whole store with records.
	Replace(ctx context.Context, records []domain.Record) error

	// Append adds records after the existing ones.
	Append(ctx context.Context, records ...domain.Record) error
}

// Snapshotter is implemented by stores that can back up their current content before a
// destructive rewrite. Snapshot returns a description of where the copy went.
type Snapshotter interface {
	Snapshot(ctx context.Context, suffix string) (string, error)
}
