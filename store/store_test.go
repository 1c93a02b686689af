package store

import (
	"path/filepath"
	"testing"

	"kitabdunyasi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestAbsentCollectionReadsEmpty(t *testing.T) {
	st := newTestStore(t)

	books, err := st.Books()
	require.NoError(t, err)
	assert.Empty(t, books)

	sess, err := st.Session()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestCollectionRoundTrip(t *testing.T) {
	st := newTestStore(t)

	in := []models.Book{
		{ID: 1, Title: "Koroğlu", Author: "Xalq yaradıcılığı", Price: 12.5, Stock: 3},
		{ID: 2, Title: "Sevil", Author: "Cəfər Cabbarlı", Price: 9.9, Stock: 7},
	}
	require.NoError(t, st.RunExclusive(func(tx *Tx) error {
		return tx.SaveBooks(in)
	}))

	out, err := st.Books()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestOverwriteReplacesWholeCollection(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.RunExclusive(func(tx *Tx) error {
		if err := tx.SaveFavorites([]int{1, 2, 3}); err != nil {
			return err
		}
		return tx.SaveFavorites([]int{7})
	}))

	favs, err := st.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []int{7}, favs)
}

func TestSessionClear(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.RunExclusive(func(tx *Tx) error {
		return tx.SaveSession(models.Session{UserID: "user_1", Name: "Aytən"})
	}))
	sess, err := st.Session()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "user_1", sess.UserID)

	require.NoError(t, st.RunExclusive(func(tx *Tx) error {
		return tx.ClearSession()
	}))
	sess, err = st.Session()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestIntentLifecycle(t *testing.T) {
	st := newTestStore(t)

	var first, second int64
	require.NoError(t, st.RunExclusive(func(tx *Tx) error {
		var err error
		if first, err = tx.BeginIntent("settlement", map[string]string{"order": "A"}); err != nil {
			return err
		}
		second, err = tx.BeginIntent("settlement", map[string]string{"order": "B"})
		return err
	}))
	require.NotEqual(t, first, second)

	pending, err := st.PendingIntents()
	require.NoError(t, err)
	require.Len(t, pending, 2)

	require.NoError(t, st.RunExclusive(func(tx *Tx) error {
		return tx.CompleteIntent(first)
	}))

	pending, err = st.PendingIntents()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second, pending[0].ID)
	assert.Equal(t, "settlement", pending[0].Kind)
}
