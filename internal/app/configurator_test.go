package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printcraft/internal/adapter/memory"
	"printcraft/internal/app"
	"printcraft/internal/domain"
	"printcraft/internal/persist"
)

func businessCard() domain.Product {
	return domain.Product{
		Slug:              "business-card",
		Name:              "Business Card",
		BasePriceCents:    1200,
		ReferenceQuantity: 100,
		Axes: []domain.Axis{
			{Name: "size", Options: []domain.Option{{Value: "3.5x2"}, {Value: "3.3x2.1", DeltaCents: 100}}},
			{Name: "paper", Options: []domain.Option{{Value: "matte14"}, {Value: "gloss16", DeltaCents: 200}, {Value: "linen14", DeltaCents: 300}}},
			{Name: "finish", Options: []domain.Option{{Value: "none"}, {Value: "soft-touch", DeltaCents: 300}, {Value: "uv-spot", DeltaCents: 500}}},
		},
		Quantities: []int{100, 250, 500, 1000},
	}
}

func TestConfigurator_LiveQuote(t *testing.T) {
	c, err := app.NewConfigurator(businessCard())
	require.NoError(t, err)
	assert.Equal(t, int64(1200), c.Quote())

	price, err := c.Select("paper", "gloss16")
	require.NoError(t, err)
	assert.Equal(t, int64(1400), price)

	_, err = c.Select("finish", "soft-touch")
	require.NoError(t, err)
	price, err = c.SetQuantity(250)
	require.NoError(t, err)
	assert.Equal(t, int64(4250), price)
	assert.Equal(t, int64(4250), c.Quote())
}

func TestConfigurator_InvalidChangeKeepsLastValid(t *testing.T) {
	c, err := app.NewConfigurator(businessCard())
	require.NoError(t, err)
	_, err = c.Select("paper", "linen14")
	require.NoError(t, err)
	before := c.Configuration()

	price, err := c.Select("paper", "cardboard")
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	assert.Equal(t, int64(1500), price)

	_, err = c.SetQuantity(333)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = c.Select("color", "red")
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	assert.Equal(t, before, c.Configuration())
	assert.Equal(t, int64(1500), c.Quote())
}

func TestConfigurator_LineItemLocksPrice(t *testing.T) {
	ctx := context.Background()
	c, err := app.NewConfigurator(businessCard())
	require.NoError(t, err)
	_, _ = c.Select("size", "3.3x2.1")
	_, _ = c.SetQuantity(500)
	c.SetPreviewText("Your Business", "Tagline / Name")
	c.AttachArtwork("artwork/123")

	item := c.LineItem()
	assert.Equal(t, "business-card", item.ProductID)
	assert.Equal(t, "Business Card", item.Name)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, int64(6500), item.UnitPrice)
	assert.Equal(t, "artwork/123", item.ArtworkReference)
	assert.Equal(t, map[string]string{
		"size": "3.3x2.1", "paper": "matte14", "finish": "none", "quantity": "500",
	}, item.Options)

	cart := app.NewCartStore(ctx, persist.New(memory.New(), "", nil))
	added, err := cart.Add(ctx, item)
	require.NoError(t, err)

	// Later configuration changes do not touch the cart.
	_, _ = c.Select("finish", "uv-spot")
	assert.Equal(t, int64(6500), cart.Items()[0].UnitPrice)
	assert.Equal(t, added.ID, cart.Items()[0].ID)
}

func TestConfigurator_ConfigurationIsCopy(t *testing.T) {
	c, err := app.NewConfigurator(businessCard())
	require.NoError(t, err)
	cfg := c.Configuration()
	cfg.Selections["paper"] = "linen14"
	assert.Equal(t, "matte14", c.Configuration().Selections["paper"])
}

func TestQuote(t *testing.T) {
	item, err := app.Quote(businessCard(), domain.Configuration{
		Selections: map[string]string{"size": "3.5x2", "paper": "gloss16", "finish": "soft-touch"},
		Quantity:   250,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4250), item.UnitPrice)
	assert.Equal(t, "250", item.Options["quantity"])

	_, err = app.Quote(businessCard(), domain.Configuration{Quantity: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
