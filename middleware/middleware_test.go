package middleware

import (
	"testing"
	"time"

	"kitabdunyasi/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T) string {
	t.Helper()
	claims := &Claims{
		Name:   "Aysel",
		UserID: "user_1",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return token
}

func TestValidateJWTAcceptsBearerToken(t *testing.T) {
	claims, err := ValidateJWT("Bearer " + signedToken(t))
	require.NoError(t, err)
	require.Equal(t, "user_1", claims.UserID)
	require.Equal(t, "user", claims.Role)
}

func TestValidateJWTRejectsBareToken(t *testing.T) {
	_, err := ValidateJWT(signedToken(t))
	require.Error(t, err)
}

func TestValidateJWTRejectsEmptyAndMalformed(t *testing.T) {
	for _, header := range []string{"", "Bearer ", "Basic abc", "Bearer not-a-jwt"} {
		_, err := ValidateJWT(header)
		require.Error(t, err, header)
	}
}

func TestValidateJWTRejectsWrongKey(t *testing.T) {
	claims := &Claims{UserID: "user_1", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other_key"))
	require.NoError(t, err)

	_, err = ValidateJWT("Bearer " + token)
	require.Error(t, err)
}
