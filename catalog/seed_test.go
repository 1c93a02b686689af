package catalog

import (
	"path/filepath"
	"testing"

	"kitabdunyasi/models"
	"kitabdunyasi/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedOnlyWhenEmpty(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, Seed(st))
	books, err := st.Books()
	require.NoError(t, err)
	require.NotEmpty(t, books)

	// a later edit survives a restart reseed
	require.NoError(t, st.RunExclusive(func(tx *store.Tx) error {
		return tx.SaveBooks([]models.Book{{ID: 1, Title: "Tək kitab", Author: "X", Price: 1}})
	}))
	require.NoError(t, Seed(st))

	books, err = st.Books()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Tək kitab", books[0].Title)
}
