package security

import (
	"errors"
	"time"

	"outfit_advisor/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager mints and verifies the session tokens that bind a request to a
// logged-in user. It is constructed once at startup and passed down explicitly.
type TokenManager struct {
	auth *jwtauth.JWTAuth
	exp  time.Duration
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		auth: jwtauth.New("HS256", cfg.SessionSecret, nil),
		exp:  cfg.SessionExp,
	}
}

// Auth exposes the underlying jwtauth instance for the router's Verifier.
func (m *TokenManager) Auth() *jwtauth.JWTAuth {
	return m.auth
}

func (m *TokenManager) GenerateToken(userID, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(m.exp).Unix(),
		"iat":      time.Now().Unix(),
	}
	_, tokenString, err := m.auth.Encode(claims)
	return tokenString, err
}

func (m *TokenManager) SessionDuration() time.Duration {
	return m.exp
}

// Helper functions to extract claims, used by middleware and handlers.
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetUsernameFromClaims(claims jwt.MapClaims) (string, error) {
	username, ok := claims["username"].(string)
	if !ok {
		return "", errors.New("username claim is missing or not a string")
	}
	return username, nil
}
