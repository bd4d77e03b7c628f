package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lamsa/internal/clock"
	"lamsa/internal/domain"
	"lamsa/internal/services"
)

func TestPurchase_Buy(t *testing.T) {
	f := newFixture(t, clock.Fixed{T: now})
	id := f.product(t, "Test Cake", "cakes", 50, 20)

	sale, err := f.purchases.Buy(id, 3)
	require.NoError(t, err)
	assert.NotZero(t, sale.ID)
	assert.Equal(t, id, sale.ProductID)
	assert.Equal(t, 3, sale.Quantity)
	assert.Equal(t, 50.0, sale.UnitPrice)
	assert.Equal(t, 150.0, sale.TotalPrice)
	assert.Equal(t, "2026-10-15 14:30:00", sale.SaleDate)

	st, err := f.purchases.Stats(id)
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStats{TotalSold: 3, Orders: 1}, st)
}

func TestPurchase_QuantityBelowOneCountsAsOne(t *testing.T) {
	f := newFixture(t, clock.Fixed{T: now})
	id := f.product(t, "Muffin", "muffins", 18, 7)

	for _, q := range []int{0, -5} {
		sale, err := f.purchases.Buy(id, q)
		require.NoError(t, err)
		assert.Equal(t, 1, sale.Quantity)
		assert.Equal(t, 18.0, sale.TotalPrice)
	}
}

func TestPurchase_UnknownProductWritesNothing(t *testing.T) {
	f := newFixture(t, clock.Fixed{T: now})
	f.product(t, "Muffin", "muffins", 18, 7)

	_, err := f.purchases.Buy(999, 2)
	assert.ErrorIs(t, err, services.ErrNotFound)

	n, err := f.sales.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPurchase_LeavesProductUntouched(t *testing.T) {
	f := newFixture(t, clock.Fixed{T: now})
	id := f.product(t, "Tart", "tarts", 55, 22)
	before, err := f.catalog.GetProduct(id)
	require.NoError(t, err)

	_, err = f.purchases.Buy(id, 4)
	require.NoError(t, err)

	after, err := f.catalog.GetProduct(id)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
