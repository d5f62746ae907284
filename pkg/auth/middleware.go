package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/jobtracker/pkg/handlers"
)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored by Middleware.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Middleware rejects requests without a valid bearer credential with 401
// before the wrapped handler runs.
func Middleware(extractor *Extractor, logger *slog.Logger) func(http.Handler) http.Handler {
	logger = logger.With("middleware", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := extractor.Extract(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				handlers.RespondError(w, logger, http.StatusUnauthorized, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequestPrincipal returns the principal of r, or ErrUnauthorized when r did
// not pass through Middleware.
func RequestPrincipal(r *http.Request) (Principal, error) {
	p, ok := PrincipalFrom(r.Context())
	if !ok {
		return Principal{}, ErrUnauthorized
	}
	return p, nil
}
