package receipts

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

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
		return tx.SaveOrders([]models.Order{{
			ID: "ord1", OrderNumber: "123456ABCD", UserID: "user_1",
			Items: []models.OrderItem{
				{BookID: 1, Title: "Koroglu", Author: "Xalq yaradiciligi", Price: 12.5, Quantity: 2},
			},
			BillingInfo: models.BillingInfo{Name: "Ayten", City: "Baki", Address: "Nizami 5"},
			Subtotal:    25, Shipping: 5, Total: 30,
			Status: models.OrderPending, OrderDate: time.Now(),
		}})
	}))
	return NewService(st)
}

func TestGenerateOwnerGetsPDF(t *testing.T) {
	svc := newTestService(t)

	pdf, err := svc.Generate("ord1", "user_1", "user")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestGenerateAdminBypassesOwnership(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Generate("ord1", "someone_else", "admin")
	assert.NoError(t, err)
}

func TestGenerateAccessControl(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Generate("ord1", "someone_else", "user")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Generate("ghost", "user_1", "user")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestQRPayloadIsStableAndSigned(t *testing.T) {
	a := QRPayload("ord1", "123456ABCD")
	b := QRPayload("ord1", "123456ABCD")
	assert.Equal(t, a, b)

	parts := strings.Split(a, "|")
	require.Len(t, parts, 3)
	assert.Equal(t, "ord1", parts[0])
	assert.Equal(t, "123456ABCD", parts[1])
	assert.NotEmpty(t, parts[2])

	assert.NotEqual(t, a, QRPayload("ord2", "123456ABCD"))
}
