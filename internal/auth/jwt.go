package auth

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	secretOnce sync.Once
	jwtSecret  []byte
)

func secret() ([]byte, error) {
	secretOnce.Do(func() {
		jwtSecret = []byte(os.Getenv("JWT_SECRET"))
	})
	if len(jwtSecret) == 0 {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return jwtSecret, nil
}

// Claims carried by access tokens; IsManager gates administrative routes.
type Claims struct {
	UserID    uint `json:"userId"`
	IsManager bool `json:"isManager"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 JWT valid for 24h.
func GenerateToken(userID uint, isManager bool) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}
	claims := &Claims{
		UserID:    userID,
		IsManager: isManager,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseAndValidate checks the signature and expiry and returns the claims.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("could not extract claims")
	}
	return claims, nil
}
