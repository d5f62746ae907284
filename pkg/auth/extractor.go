package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Principal is the verified caller of a request.
type Principal struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// Validator verifies a raw credential and returns its claims.
type Validator interface {
	Validate(ctx context.Context, token string) (Claims, bool)
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(ctx context.Context, token string) (Claims, bool)

// Validate calls f(ctx, token).
func (f ValidatorFunc) Validate(ctx context.Context, token string) (Claims, bool) {
	return f(ctx, token)
}

// Extractor resolves the principal from an Authorization header. Validators
// are tried in order; the first that accepts the credential wins.
type Extractor struct {
	validators []Validator
}

// NewExtractor creates an Extractor that validates with issuer first, then
// with any additional validators.
func NewExtractor(issuer *Issuer, additional ...Validator) *Extractor {
	validators := []Validator{
		ValidatorFunc(func(_ context.Context, token string) (Claims, bool) {
			return issuer.Validate(token)
		}),
	}

	for _, v := range additional {
		if v != nil {
			validators = append(validators, v)
		}
	}

	return &Extractor{validators: validators}
}

// Extract parses "Bearer <credential>", validates the credential and reads
// the principal from its claims. Every failure wraps ErrUnauthorized.
func (e *Extractor) Extract(ctx context.Context, header string) (Principal, error) {
	if header == "" {
		return Principal{}, fmt.Errorf("%w: missing authorization header", ErrUnauthorized)
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return Principal{}, fmt.Errorf("%w: bearer scheme required", ErrUnauthorized)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return Principal{}, fmt.Errorf("%w: empty credential", ErrUnauthorized)
	}

	for _, v := range e.validators {
		if claims, ok := v.Validate(ctx, token); ok {
			return PrincipalFromClaims(claims)
		}
	}

	return Principal{}, fmt.Errorf("%w: invalid credential", ErrUnauthorized)
}

// PrincipalFromClaims reads the subject as a UUID and the email from claims.
func PrincipalFromClaims(claims Claims) (Principal, error) {
	sub, ok := claims.Get(FieldSubject)
	if !ok {
		return Principal{}, fmt.Errorf("%w: subject claim missing", ErrUnauthorized)
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: subject is not a uuid", ErrUnauthorized)
	}

	email, ok := claims.Get(FieldEmail)
	if !ok {
		return Principal{}, fmt.Errorf("%w: email claim missing", ErrUnauthorized)
	}

	return Principal{UserID: id, Email: email}, nil
}
