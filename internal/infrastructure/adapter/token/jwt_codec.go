package token

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "acorn-grove"

// JWTCodec signs the user id as the subject of an HS256 token
type JWTCodec struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

var _ coreport.TokenCodec = (*JWTCodec)(nil)

// NewJWTCodec creates a codec. A zero ttl issues tokens that never expire.
func NewJWTCodec(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTCodec, error) {
	if secret == "" {
		return nil, errors.New("jwt secret cannot be empty")
	}
	return &JWTCodec{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Encode issues a signed token for userID
func (c *JWTCodec) Encode(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: empty user id", errs.ErrValidation)
	}

	now := c.timeProvider.Now()
	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and expiry and returns the subject
func (c *JWTCodec) Decode(token string) (string, error) {
	if token == "" {
		return "", errs.ErrUnauthenticated
	}

	keyFunc := func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(c.timeProvider.Now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUnauthenticated, err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", errs.ErrUnauthenticated)
	}
	return claims.Subject, nil
}
