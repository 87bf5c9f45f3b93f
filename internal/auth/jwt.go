// Package auth issues and verifies the bearer tokens used by the API
// and hashes user passwords.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = 24 * time.Hour

var (
	ErrTokenInvalid = errors.New("the bearer token is invalid or expired")
)

// Claims are the JWT claims carried by an issued token.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// Secret returns the signing secret for tokens.
//
// It is read from the JWT_SECRET environment variable. The fallback is
// only acceptable for local development, main warns when it is used.
func Secret() string {
	if secret, ok := os.LookupEnv("JWT_SECRET"); ok {
		return secret
	}

	return "familyledger-development-secret"
}

// GenerateToken issues a signed bearer token for the user.
func GenerateToken(secret string, userID uuid.UUID) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a bearer token and returns the user ID it was
// issued for.
func ParseToken(secret, tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}

	return claims.UserID, nil
}
