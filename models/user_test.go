package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserJSONKeepsHashPublicDropsIt(t *testing.T) {
	u := User{
		ID:       "user_1",
		Name:     "Aysel",
		Email:    "aysel@example.az",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"password":"$2a$10$abcdefghijklmnopqrstuv"`)

	pub, err := json.Marshal(u.Public())
	require.NoError(t, err)
	require.NotContains(t, string(pub), "password")
	require.Contains(t, string(pub), `"email":"aysel@example.az"`)
}

func TestUserSurvivesCollectionRoundTrip(t *testing.T) {
	u := User{ID: "user_1", Email: "aysel@example.az", Password: "$2a$10$hash"}

	raw, err := json.Marshal([]User{u})
	require.NoError(t, err)

	var back []User
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Len(t, back, 1)
	require.Equal(t, "$2a$10$hash", back[0].Password)
}
