package auth

import (
	"path/filepath"
	"testing"

	"kitabdunyasi/bonus"
	"kitabdunyasi/middleware"
	"kitabdunyasi/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st, bonus.NewService(st)), st
}

func TestRegisterGrantsWelcomeBonusOnce(t *testing.T) {
	svc, st := newTestService(t)

	sess, err := svc.Register(RegisterInput{Name: "Aytən", Email: "ayten@example.com", Password: "sirli123"})
	require.NoError(t, err)
	assert.Equal(t, bonus.WelcomeBonus, sess.Bonus)

	users, err := st.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, bonus.WelcomeBonus, users[0].Bonus)
	require.Len(t, users[0].BonusHistory, 1)
	assert.Equal(t, bonus.WelcomeType, users[0].BonusHistory[0].Type)
	assert.Equal(t, bonus.WelcomeBonus, users[0].BonusHistory[0].Amount)

	// password is stored hashed, never verbatim
	assert.NotEqual(t, "sirli123", users[0].Password)
	assert.NotEmpty(t, users[0].Password)
}

func TestRegisterEstablishesSession(t *testing.T) {
	svc, st := newTestService(t)

	sess, err := svc.Register(RegisterInput{Name: "Aytən", Email: "ayten@example.com", Password: "sirli123"})
	require.NoError(t, err)

	stored, err := st.Session()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, sess.UserID, stored.UserID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(RegisterInput{Name: "Aytən", Email: "ayten@example.com", Password: "sirli123"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Name: "Rəşad", Email: "AYTEN@example.com", Password: "sirli123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register(RegisterInput{Name: "Aytən", Email: "ayten@example.com", Password: "12345"})
	assert.ErrorIs(t, err, ErrWeakSecret)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register(RegisterInput{Name: "Aytən", Email: "ayten@example.com", Password: "sirli123"})
	require.NoError(t, err)

	sess, err := svc.Login("ayten@example.com", "sirli123")
	require.NoError(t, err)
	assert.Equal(t, "Aytən", sess.Name)
	assert.Equal(t, bonus.WelcomeBonus, sess.Bonus)

	_, err = svc.Login("ayten@example.com", "yanlis")
	assert.ErrorIs(t, err, ErrAuthFailed)
	_, err = svc.Login("kimse@example.com", "sirli123")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestLogoutClearsSession(t *testing.T) {
	svc, st := newTestService(t)
	_, err := svc.Register(RegisterInput{Name: "Aytən", Email: "ayten@example.com", Password: "sirli123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	sess, err := st.Session()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestAdminLogin(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.AdminLogin("admin", "yanlis")
	assert.ErrorIs(t, err, ErrAuthFailed)

	sess, err := svc.AdminLogin("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Role)

	stored, err := st.Session()
	require.NoError(t, err)
	assert.Nil(t, stored) // admin login never touches the buyer session

	require.NoError(t, svc.AdminLogout())
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := Token("user_1", "Aytən", "user")
	require.NoError(t, err)

	claims, err := middleware.ValidateJWT("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "user", claims.Role)
}
