package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name       string     `json:"name"`
	Email      string     `json:"email" gorm:"uniqueIndex;size:255"`
	Address    string     `json:"address"`
	Phone      string     `json:"phone"`
	Role       string     `json:"role" gorm:"default:user"`
	Credential Credential `json:"-"`
}

// Credential holds the password hash in a table of its own, so user rows can
// be selected and serialized without ever touching it.
type Credential struct {
	gorm.Model
	UserID uint   `json:"-" gorm:"uniqueIndex"`
	Hash   string `json:"-"`
}

// PublicUser is the projection of a user that is safe to return in responses.
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

type RegisterData struct {
	Name            string `json:"name" binding:"required,min=4,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=255"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Address         string `json:"address" binding:"max=255"`
	Phone           string `json:"phone" binding:"max=32"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
