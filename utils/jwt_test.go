package utils

import (
	"testing"

	"github.com/endabelyu/nakama-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{
		Model: gorm.Model{ID: 42},
		Email: "luffy@example.com",
		Role:  "user",
	}

	token, err := GenerateToken(user, "test-secret")
	require.NoError(t, err)

	claims, err := ParseToken(token, "test-secret")
	require.NoError(t, err)

	userID, ok := UserIDFromClaims(claims)
	require.True(t, ok)
	assert.EqualValues(t, 42, userID)
	assert.Equal(t, "luffy@example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := models.User{Model: gorm.Model{ID: 1}}

	token, err := GenerateToken(user, "test-secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
