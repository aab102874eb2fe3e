package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printcraft/internal/app"
	"printcraft/internal/catalog"
	"printcraft/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestDraftService_StartsFromDefault(t *testing.T) {
	s := app.NewDraftService(catalog.Default())

	d, err := s.Get(context.Background(), "business-card")
	require.NoError(t, err)
	assert.Equal(t, "business-card", d.Product)
	assert.Equal(t, int64(1200), d.PriceCents)
	assert.Equal(t, 100, d.Configuration.Quantity)
	assert.Equal(t, "matte14", d.Configuration.Selections["paper"])
}

func TestDraftService_ApplyQuotesLive(t *testing.T) {
	ctx := context.Background()
	s := app.NewDraftService(catalog.Default())

	_, err := s.Apply(ctx, "business-card", app.DraftChange{Axis: "paper", Value: "gloss16"})
	require.NoError(t, err)
	d, err := s.Apply(ctx, "business-card", app.DraftChange{Axis: "finish", Value: "soft-touch", Quantity: ptr(250)})
	require.NoError(t, err)
	assert.Equal(t, int64(4250), d.PriceCents)

	again, err := s.Get(ctx, "business-card")
	require.NoError(t, err)
	assert.Equal(t, d, again, "draft is kept between calls")
}

func TestDraftService_InvalidChangeKeepsLastValid(t *testing.T) {
	ctx := context.Background()
	s := app.NewDraftService(catalog.Default())
	valid, err := s.Apply(ctx, "business-card", app.DraftChange{Axis: "paper", Value: "linen14"})
	require.NoError(t, err)

	d, err := s.Apply(ctx, "business-card", app.DraftChange{Axis: "paper", Value: "vellum"})
	require.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	assert.Equal(t, valid, d)

	d, err = s.Apply(ctx, "business-card", app.DraftChange{Quantity: ptr(300)})
	require.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	assert.Equal(t, valid, d)

	// The selection lands; the bad quantity after it does not.
	d, err = s.Apply(ctx, "business-card", app.DraftChange{Axis: "size", Value: "3.3x2.1", Quantity: ptr(7)})
	require.Error(t, err)
	assert.Equal(t, "3.3x2.1", d.Configuration.Selections["size"])
	assert.Equal(t, 100, d.Configuration.Quantity)
}

func TestDraftService_PreviewAndArtworkReachLineItem(t *testing.T) {
	ctx := context.Background()
	s := app.NewDraftService(catalog.Default())

	_, err := s.Apply(ctx, "business-card", app.DraftChange{
		Quantity:         ptr(500),
		PreviewText:      ptr([]string{"Ada Lovelace", "Analyst"}),
		ArtworkReference: ptr("artwork/abc"),
	})
	require.NoError(t, err)

	item, err := s.LineItem(ctx, "business-card")
	require.NoError(t, err)
	assert.Equal(t, "artwork/abc", item.ArtworkReference)
	assert.Equal(t, "500", item.Options[app.QuantityOption])
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, int64(6000), item.UnitPrice)

	d, err := s.Get(ctx, "business-card")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ada Lovelace", "Analyst"}, d.Configuration.PreviewText)
}

func TestDraftService_Reset(t *testing.T) {
	ctx := context.Background()
	s := app.NewDraftService(catalog.Default())
	_, err := s.Apply(ctx, "business-card", app.DraftChange{Axis: "finish", Value: "uv-spot"})
	require.NoError(t, err)

	d, err := s.Reset(ctx, "business-card")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), d.PriceCents)
	assert.Equal(t, "none", d.Configuration.Selections["finish"])
}

func TestDraftService_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	s := app.NewDraftService(catalog.Default())

	_, err := s.Get(ctx, "poster")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = s.Apply(ctx, "poster", app.DraftChange{Axis: "paper", Value: "gloss16"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = s.LineItem(ctx, "poster")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
