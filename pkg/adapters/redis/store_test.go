package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/angjelo/AIAgentStudio/pkg/adapters/redis"
	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/angjelo/AIAgentStudio/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newTestClient(t)
	ports.RunAgentStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	err := store.Save(ctx, &domain.Agent{ID: "agent-ttl", Name: "short-lived"})
	assert.NoError(t, err)

	ids, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Contains(t, ids, "agent-ttl")

	// Fast forward past the TTL so the blob expires.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "agent-ttl")
	assert.ErrorIs(t, err, domain.ErrAgentNotFound)

	// The index entry is cleaned up lazily on List.
	ids, err = store.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	err := store.Save(ctx, &domain.Agent{ID: "my-agent", Name: "prefixed"})
	assert.NoError(t, err)

	assert.True(t, mr.Exists("custom:app:my-agent"), "expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "expected index with custom prefix to exist")

	ids, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Contains(t, ids, "my-agent")
}
