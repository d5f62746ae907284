// Package auth issues and validates bearer credentials and resolves the
// calling principal from them.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer mints and validates HS256 credentials binding a user id and email.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	lifetime time.Duration
	now      func() time.Time
}

// NewIssuer creates an Issuer from a finalized Config.
func NewIssuer(cfg *Config) (*Issuer, error) {
	if cfg.SigningSecret == "" {
		return nil, ErrMissingSecret
	}

	return &Issuer{
		secret:   []byte(cfg.SigningSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		lifetime: cfg.TokenLifetimeDuration(),
		now:      time.Now,
	}, nil
}

// WithClock replaces the issuer's time source.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue returns a signed credential for the user. Subject and email are
// written under both their standard and alternate claim names.
func (i *Issuer) Issue(userID uuid.UUID, email string) (string, error) {
	now := i.now()

	claims := jwt.MapClaims{
		ClaimSubject:        userID.String(),
		ClaimNameIdentifier: userID.String(),
		ClaimEmail:          email,
		ClaimEmailAddress:   email,
		"jti":               uuid.NewString(),
		"iat":               now.Unix(),
		"exp":               now.Add(i.lifetime).Unix(),
		"iss":               i.issuer,
		"aud":               i.audience,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Validate verifies signature, algorithm, issuer, audience and expiry with
// no clock skew allowance. Any failure yields (nil, false).
func (i *Issuer) Validate(token string) (Claims, bool) {
	parsed, err := jwt.Parse(
		token,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	return Claims(mc), true
}
