package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/todi/pkg/adapters/redis"
	"github.com/aretw0/todi/pkg/domain"
	"github.com/aretw0/todi/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ports.RunRecordStoreContract(t, store)
}

func TestRedisStore_Key(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithKey("custom:records"))

	require.NoError(t, store.Append(context.Background(), domain.Record{Index: "1"}))
	assert.True(t, mr.Exists("custom:records"))
	assert.False(t, mr.Exists(redis.DefaultKey))
}

func TestRedisStore_Snapshot(t *testing.T) {
	ctx := context.Background()
	mr, client := newClient(t)
	store := redis.NewFromClient(client)

	dest, err := store.Snapshot(ctx, "resynth_backup")
	require.NoError(t, err)
	assert.Empty(t, dest)

	require.NoError(t, store.Append(ctx, domain.Record{Index: "1"}, domain.Record{Index: "2"}))
	dest, err = store.Snapshot(ctx, "resynth_backup")
	require.NoError(t, err)
	assert.Equal(t, redis.DefaultKey+":resynth_backup", dest)

	backup, err := mr.List(dest)
	require.NoError(t, err)
	assert.Len(t, backup, 2)
}

func TestRedisStore_CorruptEntry(t *testing.T) {
	mr, client := newClient(t)
	_, err := mr.Push(redis.DefaultKey, "{broken")
	require.NoError(t, err)

	_, err = redis.NewFromClient(client).List(context.Background())
	assert.Error(t, err)
}
