// Package auth issues the signed tokens the Verify middleware checks.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"agridev/entities"
)

// SignToken issues an HMAC token for the user. Company users carry their
// company id so the calling layer can scope project lookups.
func SignToken(secret string, u *entities.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":   u.ID,
		"type": u.Type,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	if u.Role != nil {
		claims["role"] = *u.Role
	}
	if u.Company != nil {
		claims["companyId"] = u.Company.ID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
