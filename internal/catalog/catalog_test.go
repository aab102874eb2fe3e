package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printcraft/internal/catalog"
	"printcraft/internal/domain"
)

func TestDefault(t *testing.T) {
	ctx := context.Background()
	c := catalog.Default()

	p, err := c.Product(ctx, "business-card")
	require.NoError(t, err)
	assert.Equal(t, "Business Card", p.Name)
	assert.Equal(t, int64(1200), p.BasePriceCents)
	assert.Equal(t, 100, p.ReferenceQuantity)
	assert.Equal(t, []int{100, 250, 500, 1000}, p.Quantities)
	require.Len(t, p.Axes, 3)

	paper, ok := p.Axis("paper")
	require.True(t, ok)
	gloss, ok := paper.Option("gloss16")
	require.True(t, ok)
	assert.Equal(t, int64(200), gloss.DeltaCents)
	assert.Equal(t, "Gloss 16pt", gloss.Label)

	price, err := domain.Price(p, domain.Configuration{
		Selections: map[string]string{"size": "3.5x2", "paper": "gloss16", "finish": "soft-touch"},
		Quantity:   250,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4250), price)

	all, err := c.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestProductNotFound(t *testing.T) {
	_, err := catalog.Default().Product(context.Background(), "poster")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestLoadRejectsInvalidProducts(t *testing.T) {
	tests := map[string]string{
		"empty":         `products: []`,
		"unknown field": "products:\n  - slug: x\n    name: X\n    reference_quantity: 1\n    colour: red\n",
		"no reference":  "products:\n  - slug: x\n    name: X\n",
		"duplicate": "products:\n" +
			"  - {slug: x, name: X, reference_quantity: 1}\n" +
			"  - {slug: x, name: Y, reference_quantity: 1}\n",
		"negative floor": "products:\n" +
			"  - slug: x\n    name: X\n    base_price_cents: 10\n    reference_quantity: 1\n" +
			"    axes:\n      - name: paper\n        options:\n          - {value: cheap, delta_cents: -20}\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "products:\n" +
		"  - slug: flyer\n    name: Flyer\n    base_price_cents: 900\n    reference_quantity: 50\n" +
		"    axes:\n      - name: paper\n        options:\n          - {value: bond, delta_cents: 0}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	p, err := c.Product(context.Background(), "flyer")
	require.NoError(t, err)
	assert.Empty(t, p.Quantities)
	assert.Equal(t, 50, p.Default().Quantity)

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
