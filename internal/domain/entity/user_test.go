package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleCustomer,
		ReferralCode: "ABCD1234",
	}

	body, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "$2a$10$")
	assert.NotContains(t, string(body), "PasswordHash")
	assert.Contains(t, string(body), `"email":"test@example.com"`)
}

func TestUser_PasswordHashSurvivesRoundTripOnlyInMemory(t *testing.T) {
	user := &User{PasswordHash: "$2a$10$abcdefghijklmnopqrstuv"}

	body, err := json.Marshal(user)
	require.NoError(t, err)

	var restored User
	require.NoError(t, json.Unmarshal(body, &restored))

	// A user restored from a cache entry carries no credential.
	assert.Empty(t, restored.PasswordHash)
}
