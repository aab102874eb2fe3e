package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printcraft/internal/app"
	"printcraft/internal/domain"
	"printcraft/internal/persist"
)

// setupTestRedis creates a miniredis server and returns a Store on it.
func setupTestRedis(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, ttl), mr
}

func TestGet_Missing(t *testing.T) {
	store, _ := setupTestRedis(t, 0)
	_, err := store.Get(context.Background(), "printcraft:cart_v1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestPutGet(t *testing.T) {
	store, mr := setupTestRedis(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "printcraft:session_v1", []byte(`{"id":"s","email":"a@example.com"}`)))

	stored, err := mr.Get("printcraft:session_v1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"s","email":"a@example.com"}`, stored)
	assert.Equal(t, time.Duration(0), mr.TTL("printcraft:session_v1"), "no ttl by default")

	got, err := store.Get(ctx, "printcraft:session_v1")
	require.NoError(t, err)
	assert.Equal(t, stored, string(got))
}

func TestPut_WithTTL(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)
	require.NoError(t, store.Put(context.Background(), "printcraft:cart_v1", []byte(`{"items":[]}`)))
	assert.Equal(t, time.Hour, mr.TTL("printcraft:cart_v1"))

	mr.FastForward(2 * time.Hour)
	_, err := store.Get(context.Background(), "printcraft:cart_v1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestDelete(t *testing.T) {
	store, mr := setupTestRedis(t, 0)
	ctx := context.Background()
	require.NoError(t, mr.Set("printcraft:cart_v1", "{}"))

	require.NoError(t, store.Delete(ctx, "printcraft:cart_v1"))
	assert.False(t, mr.Exists("printcraft:cart_v1"))
	assert.NoError(t, store.Delete(ctx, "printcraft:cart_v1"), "deleting a missing key is not an error")
}

func TestServerDown(t *testing.T) {
	store, mr := setupTestRedis(t, 0)
	mr.Close()
	_, err := store.Get(context.Background(), "printcraft:cart_v1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSnapshotNotFound)
	assert.ErrorContains(t, err, "redis get failed")
}

func TestSessionSurvivesReload(t *testing.T) {
	store, _ := setupTestRedis(t, 0)
	ctx := context.Background()

	sessions := app.NewSessionStore(ctx, persist.New(store, "", nil))
	sess, err := sessions.SignIn(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	reloaded := app.NewSessionStore(ctx, persist.New(store, "", nil))
	got, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, sess, got)
}
