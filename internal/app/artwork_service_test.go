package app_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printcraft/internal/adapter/memory"
	"printcraft/internal/app"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestArtwork_RegisterAndOpen(t *testing.T) {
	ctx := context.Background()
	svc := app.NewArtworkService(memory.New())

	ref, err := svc.Register(ctx, pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "artwork/"))

	data, ct, err := svc.Open(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "image/png", ct)
}

func TestArtwork_RejectsNonImages(t *testing.T) {
	svc := app.NewArtworkService(memory.New())
	for name, data := range map[string][]byte{
		"empty": nil,
		"pdf":   []byte("%PDF-1.7\n"),
		"text":  []byte("hello"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), data)
			assert.ErrorIs(t, err, app.ErrUnsupportedArtwork)
		})
	}
}

func TestArtwork_OpenUnknown(t *testing.T) {
	svc := app.NewArtworkService(memory.New())
	_, _, err := svc.Open(context.Background(), "artwork/missing")
	assert.ErrorIs(t, err, app.ErrArtworkNotFound)
	_, _, err = svc.Open(context.Background(), "printcraft:cart_v1")
	assert.ErrorIs(t, err, app.ErrArtworkNotFound)
}
