package services

import (
	"errors"
	"log"

	"github.com/endabelyu/nakama-api/apperrors"
	"github.com/endabelyu/nakama-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Register creates the user, its credential and an empty cart in one
// transaction. The password/confirm-password match is enforced at the request
// boundary before this is called.
func Register(db *gorm.DB, payload models.RegisterData) (models.PublicUser, error) {
	var existing models.User
	result := db.Where("email = ?", payload.Email).Find(&existing)
	if result.Error != nil {
		return models.PublicUser{}, apperrors.Internal("failed to check existing user", result.Error)
	}
	if result.RowsAffected > 0 {
		return models.PublicUser{}, apperrors.Validation("user with this email already exists")
	}

	hash, err := hashPassword(payload.Password)
	if err != nil {
		return models.PublicUser{}, apperrors.Internal("failed to hash password", err)
	}

	user := models.User{
		Name:    payload.Name,
		Email:   payload.Email,
		Address: payload.Address,
		Phone:   payload.Phone,
		Role:    "user",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		credential := models.Credential{UserID: user.ID, Hash: hash}
		if err := tx.Create(&credential).Error; err != nil {
			return err
		}
		cart := models.Cart{UserID: user.ID, AllSelected: false}
		return tx.Create(&cart).Error
	})
	if err != nil {
		log.Println("User registration error:", err)
		return models.PublicUser{}, apperrors.Internal("failed to create user", err)
	}

	return user.Public(), nil
}

// Login verifies the credentials and returns the matched user. Missing user,
// missing credential row and a wrong password are deliberately the same error.
func Login(db *gorm.DB, payload models.LoginData) (models.User, error) {
	var user models.User
	err := db.Where("email = ?", payload.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.Auth("invalid email or password")
		}
		return models.User{}, apperrors.Internal("failed to fetch user", err)
	}

	var credential models.Credential
	err = db.Where("user_id = ?", user.ID).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.Auth("invalid email or password")
		}
		return models.User{}, apperrors.Internal("failed to fetch credential", err)
	}

	if err := comparePasswords(credential.Hash, payload.Password); err != nil {
		return models.User{}, apperrors.Auth("invalid email or password")
	}

	return user, nil
}

// GetProfile resolves a verified token's user id back to a user.
func GetProfile(db *gorm.DB, userID uint) (models.PublicUser, error) {
	var user models.User
	err := db.First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PublicUser{}, apperrors.NotFound("user not found")
		}
		return models.PublicUser{}, apperrors.Internal("failed to fetch user", err)
	}
	return user.Public(), nil
}
