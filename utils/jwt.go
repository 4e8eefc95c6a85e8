package utils

import (
	"time"

	"github.com/endabelyu/nakama-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a signed HS256 token bound to the user id. Tokens are
// valid for 30 days.
func GenerateToken(user models.User, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a token string and returns its claims.
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// UserIDFromClaims pulls the user id out of verified claims. JSON numbers
// decode as float64.
func UserIDFromClaims(claims jwt.MapClaims) (uint, bool) {
	raw, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(raw), true
}
