package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/todi/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the list key that holds the records.
const DefaultKey = "todi:records"

// Store implements ports.RecordStore using a Redis list of JSON records.
type Store struct {
	client *backend.Client
	key    string
}

type Option func(*Store)

// WithKey sets the list key for records.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		key:    DefaultKey,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// List reads the whole list in order.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	vals, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records from redis: %w", err)
	}

	records := make([]domain.Record, 0, len(vals))
	for i, val := range vals {
		var r domain.Record
		if err := json.Unmarshal([]byte(val), &r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// Replace deletes the list and pushes records in one transaction.
func (s *Store) Replace(ctx context.Context, records []domain.Record) error {
	vals, err := marshalAll(records)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key)
	if len(vals) > 0 {
		pipe.RPush(ctx, s.key, vals...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace records in redis: %w", err)
	}
	return nil
}

// Append pushes records to the tail of the list.
func (s *Store) Append(ctx context.Context, records ...domain.Record) error {
	if len(records) == 0 {
		return nil
	}
	vals, err := marshalAll(records)
	if err != nil {
		return err
	}
	if err := s.client.RPush(ctx, s.key, vals...).Err(); err != nil {
		return fmt.Errorf("failed to append records to redis: %w", err)
	}
	return nil
}

// Snapshot copies the list to "<key>:<suffix>".
func (s *Store) Snapshot(ctx context.Context, suffix string) (string, error) {
	dest := s.key + ":" + suffix
	vals, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return "", fmt.Errorf("failed to read records from redis: %w", err)
	}
	if len(vals) == 0 {
		return "", nil
	}

	items := make([]any, len(vals))
	for i, v := range vals {
		items[i] = v
	}
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, dest)
	pipe.RPush(ctx, dest, items...)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to snapshot records in redis: %w", err)
	}
	return dest, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

func marshalAll(records []domain.Record) ([]any, error) {
	vals := make([]any, 0, len(records))
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal record %q: %w", r.Index, err)
		}
		vals = append(vals, data)
	}
	return vals, nil
}
