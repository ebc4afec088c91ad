package services

import (
	"fmt"
	"time"

	"github.com/UpekaFernando/tour-blog-info-final/config"

	"github.com/dgrijalva/jwt-go"
)

// Tokens carry only the user id. Role checks are always re-derived from
// the database on each request, never from claims.

func jwtSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "devsecret"))
}

// GenerateToken signs a 30-day HS256 token for the given user id.
func GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken verifies the signature and expiry, returning the user id.
func ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return 0, fmt.Errorf("user id not found in token claims")
	}

	return uint(id), nil
}
