package auth

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LocalUserID is the user of a tracker running without authentication
const LocalUserID = "local"

// Settings configures token signing
type Settings struct {
	Secret   string
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

var (
	mu       sync.RWMutex
	settings = Settings{
		Secret:   "development-insecure-secret-change-me",
		Issuer:   "dayjob-record",
		Audience: "dayjob-record-clients",
		TokenTTL: 24 * time.Hour,
	}
)

// Configure replaces the signing settings; empty fields keep their current value
func Configure(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	if s.Secret != "" {
		settings.Secret = s.Secret
	}
	if s.Issuer != "" {
		settings.Issuer = s.Issuer
	}
	if s.Audience != "" {
		settings.Audience = s.Audience
	}
	if s.TokenTTL > 0 {
		settings.TokenTTL = s.TokenTTL
	}
}

func current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return settings
}

// Claims represents the JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for the given user
func GenerateToken(userID string) (string, time.Time, error) {
	s := current()
	issuedAt := time.Now()
	expiresAt := issuedAt.Add(s.TokenTTL)

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.Issuer,
			Audience:  jwt.ClaimStrings{s.Audience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string) (*Claims, error) {
	s := current()
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Issuer != s.Issuer {
		return nil, errors.New("invalid token issuer")
	}
	if !slices.Contains(claims.Audience, s.Audience) {
		return nil, errors.New("invalid token audience")
	}
	return claims, nil
}
