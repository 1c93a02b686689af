package bonus

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
		return tx.SaveUsers([]models.User{{ID: "user_1", Name: "Aytən", Bonus: 0}})
	}))
	return NewService(st)
}

func TestCreditAndDebit(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Credit("user_1", 50, WelcomeType, ""))
	require.NoError(t, svc.Credit("user_1", 30, OrderEarnType, "ord1"))
	require.NoError(t, svc.Debit("user_1", 20, OrderSpendType, "ord2"))

	balance, err := svc.Balance("user_1")
	require.NoError(t, err)
	assert.Equal(t, 60, balance)
}

func TestHistoryNewestFirstWithSignedAmounts(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Credit("user_1", 50, WelcomeType, ""))
	require.NoError(t, svc.Debit("user_1", 10, OrderSpendType, "ord1"))

	hist, err := svc.History("user_1")
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, OrderSpendType, hist[0].Type)
	assert.Equal(t, -10, hist[0].Amount)
	assert.Equal(t, WelcomeType, hist[1].Type)
	assert.Equal(t, 50, hist[1].Amount)
}

func TestUnknownUser(t *testing.T) {
	svc := newTestService(t)
	assert.ErrorIs(t, svc.Credit("ghost", 10, WelcomeType, ""), ErrUserNotFound)
	_, err := svc.Balance("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEarnedForFloorsTotal(t *testing.T) {
	assert.Equal(t, 0, EarnedFor(0))
	assert.Equal(t, 0, EarnedFor(0.99))
	assert.Equal(t, 30, EarnedFor(30.0))
	assert.Equal(t, 109, EarnedFor(109.8))
}

func TestDiscountForConversion(t *testing.T) {
	assert.InDelta(t, 0.0, DiscountFor(0), 1e-9)
	assert.InDelta(t, 0.5, DiscountFor(50), 1e-9)
	assert.InDelta(t, 1.0, DiscountFor(100), 1e-9)
}
