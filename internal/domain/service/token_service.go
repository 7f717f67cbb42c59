package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, tampered or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	AthleteID int64 `json:"-"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given athlete.
	GenerateToken(athleteID int64) (string, error)

	// ValidateToken checks signature and expiry and returns the embedded claims.
	// It does not check that the athlete still exists.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the lifetime of issued tokens.
	TokenTTL() time.Duration
}
