package favorites

import (
	"path/filepath"
	"testing"

	"kitabdunyasi/models"
	"kitabdunyasi/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, st.RunExclusive(func(tx *store.Tx) error {
		return tx.SaveBooks([]models.Book{
			{ID: 1, Title: "Koroğlu", Price: 12.5, Stock: 2},
			{ID: 2, Title: "Sevil", Price: 9.9, Stock: 0},
			{ID: 3, Title: "Əli və Nino", Price: 16.0, Stock: 5},
		})
	}))
	return NewService(st), st
}

func TestToggleFlips(t *testing.T) {
	svc, _ := newTestService(t)

	added, err := svc.Toggle(1)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.Toggle(1)
	require.NoError(t, err)
	assert.False(t, added)

	books, err := svc.List("")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestListSorts(t *testing.T) {
	svc, _ := newTestService(t)
	for _, id := range []int{3, 1, 2} {
		_, err := svc.Toggle(id)
		require.NoError(t, err)
	}

	books, err := svc.List(SortPriceAsc)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, 2, books[0].ID)
	assert.Equal(t, 3, books[2].ID)

	// newest addition first
	books, err = svc.List(SortDateAdded)
	require.NoError(t, err)
	assert.Equal(t, 2, books[0].ID)
	assert.Equal(t, 3, books[2].ID)
}

func TestListDropsVanishedBooks(t *testing.T) {
	svc, st := newTestService(t)
	_, err := svc.Toggle(1)
	require.NoError(t, err)

	require.NoError(t, st.RunExclusive(func(tx *store.Tx) error {
		return tx.SaveBooks([]models.Book{})
	}))

	books, err := svc.List("")
	require.NoError(t, err)
	assert.Empty(t, books)

	// the stored id list keeps the entry
	favs, err := st.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, favs)
}

func TestAddAllToCartCountsSkips(t *testing.T) {
	svc, st := newTestService(t)
	for _, id := range []int{1, 2, 3} {
		_, err := svc.Toggle(id)
		require.NoError(t, err)
	}

	added, skipped, err := svc.AddAllToCart()
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, skipped) // book 2 is out of stock

	entries, err := st.Cart()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAddAllToCartRespectsStockLimit(t *testing.T) {
	svc, st := newTestService(t)
	_, err := svc.Toggle(1)
	require.NoError(t, err)

	// cart already holds all available copies
	require.NoError(t, st.RunExclusive(func(tx *store.Tx) error {
		return tx.SaveCart([]models.CartEntry{{BookID: 1, Quantity: 2}})
	}))

	added, skipped, err := svc.AddAllToCart()
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, 1, skipped)
}

func TestClear(t *testing.T) {
	svc, st := newTestService(t)
	_, err := svc.Toggle(1)
	require.NoError(t, err)
	require.NoError(t, svc.Clear())

	favs, err := st.Favorites()
	require.NoError(t, err)
	assert.Empty(t, favs)
}
