package services

import (
	"testing"

	"github.com/endabelyu/nakama-api/apperrors"
	"github.com/endabelyu/nakama-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerPayload(email string) models.RegisterData {
	return models.RegisterData{
		Name:            "Monkey D. Luffy",
		Email:           email,
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
		Address:         "Sabaody Archipelago",
		Phone:           "08132456789",
	}
}

func TestRegisterCreatesUserCredentialAndCart(t *testing.T) {
	db := setupTestDB(t)

	user, err := Register(db, registerPayload("luffy@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "luffy@example.com", user.Email)

	var credential models.Credential
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&credential).Error)
	assert.NotEqual(t, "Password123!", credential.Hash)

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&cart).Error)
	assert.False(t, cart.AllSelected)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	_, err := Register(db, registerPayload("luffy@example.com"))
	require.NoError(t, err)

	_, err = Register(db, registerPayload("luffy@example.com"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)

	registered, err := Register(db, registerPayload("luffy@example.com"))
	require.NoError(t, err)

	user, err := Login(db, models.LoginData{Email: "luffy@example.com", Password: "Password123!"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)

	_, err := Register(db, registerPayload("luffy@example.com"))
	require.NoError(t, err)

	_, err = Login(db, models.LoginData{Email: "luffy@example.com", Password: "wrong-password"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)

	_, err := Login(db, models.LoginData{Email: "nobody@example.com", Password: "Password123!"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
}

func TestLoginUserWithoutCredential(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Sanji", Email: "sanji@example.com"}
	require.NoError(t, db.Create(&user).Error)

	_, err := Login(db, models.LoginData{Email: "sanji@example.com", Password: "Password123!"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)

	registered, err := Register(db, registerPayload("luffy@example.com"))
	require.NoError(t, err)

	profile, err := GetProfile(db, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, profile.Email)

	_, err = GetProfile(db, 9999)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
