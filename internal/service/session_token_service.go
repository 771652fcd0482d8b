package service

import (
	"fmt"
	"time"

	"payment-gateway-core/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTSessionTokenService implements ports.SessionTokenService using HS256
// JWT. This guards the merchant dashboard only; request authentication on
// the payment API uses the distinct canonical-hash TokenAuthenticator.
type JWTSessionTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewJWTSessionTokenService creates a new JWT session token service.
func NewJWTSessionTokenService(secret string, expiry time.Duration, issuer string) *JWTSessionTokenService {
	return &JWTSessionTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate creates a signed JWT for the given team.
func (s *JWTSessionTokenService) Generate(teamID uuid.UUID, teamSlug string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub":       teamID.String(),
		"team_slug": teamSlug,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
		"iss":       s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a JWT session token, returning the claims.
func (s *JWTSessionTokenService) Validate(tokenString string) (*ports.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing subject claim")
	}

	teamID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid team ID in token: %w", err)
	}

	teamSlug, _ := claims["team_slug"].(string)

	return &ports.SessionClaims{
		TeamID:   teamID,
		TeamSlug: teamSlug,
	}, nil
}
