package cart

import (
	"path/filepath"
	"testing"

	"kitabdunyasi/models"
	"kitabdunyasi/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, st.RunExclusive(func(tx *store.Tx) error {
		return tx.SaveBooks([]models.Book{
			{ID: 1, Title: "Koroğlu", Price: 12.5, Stock: 2},
			{ID: 2, Title: "Sevil", Price: 9.9, Stock: 0},
			{ID: 3, Title: "Əli və Nino", Price: 30.0, Stock: 10},
		})
	}))
	return NewService(st)
}

func TestAddNewAndBumpExisting(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Add(1))
	require.NoError(t, svc.Add(1))

	items, err := svc.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddOutOfStock(t *testing.T) {
	svc := newTestService(t)
	assert.ErrorIs(t, svc.Add(2), ErrOutOfStock)
	assert.ErrorIs(t, svc.Add(99), ErrBookNotFound)
}

func TestAddPastStockLimit(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Add(1))
	require.NoError(t, svc.Add(1))
	assert.ErrorIs(t, svc.Add(1), ErrStockLimit)

	items, err := svc.Items()
	require.NoError(t, err)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestSetQuantityClampsToStock(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Add(3))
	require.NoError(t, svc.SetQuantity(3, 50))

	items, err := svc.Items()
	require.NoError(t, err)
	assert.Equal(t, 10, items[0].Quantity)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Add(1))
	require.NoError(t, svc.SetQuantity(1, 0))

	items, err := svc.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSummaryShippingBoundary(t *testing.T) {
	svc := newTestService(t)

	// 12.5 + 30 = 42.5, under the free shipping line
	require.NoError(t, svc.Add(1))
	require.NoError(t, svc.Add(3))
	sum, err := svc.Summary(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 42.5, sum.Subtotal, 1e-9)
	assert.InDelta(t, ShippingFee, sum.Shipping, 1e-9)
	assert.InDelta(t, 47.5, sum.Total, 1e-9)

	// one more copy crosses the line and shipping drops to zero
	require.NoError(t, svc.Add(3))
	sum, err = svc.Summary(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 72.5, sum.Subtotal, 1e-9)
	assert.Zero(t, sum.Shipping)
	assert.InDelta(t, 72.5, sum.Total, 1e-9)
}

func TestSummaryRedeemClamping(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Add(3))

	// below the minimum redemption nothing is applied
	sum, err := svc.Summary(5, 100)
	require.NoError(t, err)
	assert.Zero(t, sum.RedeemedPoints)
	assert.Zero(t, sum.BonusDiscount)

	// more than the balance is clamped down to it
	sum, err = svc.Summary(500, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, sum.RedeemedPoints)
	assert.InDelta(t, 0.4, sum.BonusDiscount, 1e-9)
}

func TestItemsDropVanishedBooks(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Add(1))

	require.NoError(t, svc.st.RunExclusive(func(tx *store.Tx) error {
		return tx.SaveBooks([]models.Book{{ID: 3, Title: "Əli və Nino", Price: 30.0, Stock: 10}})
	}))

	items, err := svc.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}
