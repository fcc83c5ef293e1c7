package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jobboard-api/internal/models"
)

// TokenClaims is the payload carried by the session token.
type TokenClaims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the token subject back into the user identifier.
func (c *TokenClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type tokenService struct {
	secret   string
	lifetime time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
// The secret is injected here once at startup; nothing reads it ambiently.
func NewTokenService(secret string, lifetime time.Duration) TokenService {
	return &tokenService{secret: secret, lifetime: lifetime}
}

var _ TokenService = (*tokenService)(nil)

// Issue mints an HS256 token with the user ID as subject and the role as a
// custom claim, expiring after the configured lifetime.
func (s *tokenService) Issue(userID uuid.UUID, role models.Role) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		log.Printf("Error signing session token for user %s: %v", userID, err)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature and expiry and returns the embedded claims. Every
// failure mode (missing, malformed, tampered, expired) collapses to
// ErrInvalidToken; callers never see a raw parse error.
func (s *tokenService) Verify(tokenString string) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Printf("Token verification failed: token expired")
		} else {
			log.Printf("Token verification failed: %v", err)
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		log.Printf("Token verification failed: bad subject %q: %v", claims.Subject, err)
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Lifetime returns the configured token lifetime (also the cookie max-age).
func (s *tokenService) Lifetime() time.Duration {
	return s.lifetime
}
