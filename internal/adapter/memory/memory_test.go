package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printcraft/internal/domain"
)

func TestSnapshotRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Missing key
	_, err := db.Get(ctx, "printcraft:cart_v1")
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	// Put then Get
	require.NoError(t, db.Put(ctx, "printcraft:cart_v1", []byte(`{"items":[]}`)))
	got, err := db.Get(ctx, "printcraft:cart_v1")
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(got))

	// Returned buffer is a copy
	got[0] = 'X'
	again, _ := db.Get(ctx, "printcraft:cart_v1")
	assert.Equal(t, byte('{'), again[0], "expected Get to return a copy")

	// Overwrite
	require.NoError(t, db.Put(ctx, "printcraft:cart_v1", []byte(`{"items":null}`)))
	got, _ = db.Get(ctx, "printcraft:cart_v1")
	assert.Equal(t, `{"items":null}`, string(got))
	assert.Equal(t, 2, db.Writes())

	// Delete, twice
	require.NoError(t, db.Delete(ctx, "printcraft:cart_v1"))
	require.NoError(t, db.Delete(ctx, "printcraft:cart_v1"), "delete missing")
	_, err = db.Get(ctx, "printcraft:cart_v1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestKeys(t *testing.T) {
	db := New()
	ctx := context.Background()
	_ = db.Put(ctx, "printcraft:session_v1", []byte("{}"))
	_ = db.Put(ctx, "printcraft:cart_v1", []byte("{}"))
	_ = db.Put(ctx, "other:cart_v1", []byte("{}"))

	assert.Equal(t, []string{"printcraft:cart_v1", "printcraft:session_v1"}, db.Keys("printcraft:"))
}

func TestCancelledContext(t *testing.T) {
	db := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, db.Put(ctx, "k", []byte("v")), context.Canceled)
}
