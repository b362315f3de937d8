package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ruimv/tribunal-backend/internal/database"
)

var (
	// ErrExpired is returned when the token's expiry instant has passed
	ErrExpired = errors.New("token expired")
	// ErrInvalid is returned for malformed tokens and bad signatures
	ErrInvalid = errors.New("invalid token")
)

// Claims is the decoded payload of a session token
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Maker issues and verifies HMAC-signed session tokens
type Maker struct {
	secret []byte
	ttl    time.Duration
}

// NewMaker creates a token maker with the given signing secret and token lifetime
func NewMaker(secret string, ttl time.Duration) *Maker {
	return &Maker{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate creates a signed token carrying the user's identity and role
func (m *Maker) Generate(user *database.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token's signature and expiry and returns its claims.
// Expired tokens fail with ErrExpired, anything else invalid with ErrInvalid.
func (m *Maker) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
