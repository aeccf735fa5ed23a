package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// SessionClaims identifies a browser session
type SessionClaims struct {
	SessionID            string `json:"sid"` // Session identifier
	jwt.RegisteredClaims                     // Standard JWT claims
}

// GenerateSessionToken signs a session id so it can be stored in a cookie
func GenerateSessionToken(sessionID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	// Set token claims
	claims := SessionClaims{
		SessionID: sessionID, // Custom claim for the session
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Session expiry
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseSessionToken validates a session cookie and returns its claims
func ParseSessionToken(tokenStr, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.SessionID != "" {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, errors.New("invalid session token")
}
