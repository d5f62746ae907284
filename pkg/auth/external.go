package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/JaimeStill/jobtracker/pkg/lifecycle"
)

// External validates ID tokens issued by an OpenID Connect provider.
// Provider discovery happens during lifecycle startup; until it succeeds
// every token is rejected.
type External struct {
	cfg      ExternalConfig
	logger   *slog.Logger
	verifier atomic.Pointer[oidc.IDTokenVerifier]
}

// NewExternal returns nil when no external issuer is configured.
func NewExternal(cfg *ExternalConfig, logger *slog.Logger) *External {
	if cfg == nil || cfg.IssuerURL == "" {
		return nil
	}

	return &External{
		cfg:    *cfg,
		logger: logger.With("system", "oidc"),
	}
}

// Start registers provider discovery as a startup hook.
func (e *External) Start(lc *lifecycle.Coordinator) error {
	e.logger.Info("starting external identity provider", "issuer", e.cfg.IssuerURL)

	lc.OnStartup(func() error {
		provider, err := oidc.NewProvider(lc.Context(), e.cfg.IssuerURL)
		if err != nil {
			e.logger.Error("identity provider discovery failed", "error", err)
			return fmt.Errorf("identity provider discovery: %w", err)
		}

		e.verifier.Store(provider.Verifier(&oidc.Config{ClientID: e.cfg.ClientID}))
		e.logger.Info("external identity provider ready")
		return nil
	})

	return nil
}

// Validate verifies the token's signature, issuer, audience and expiry
// against the discovered provider.
func (e *External) Validate(ctx context.Context, token string) (Claims, bool) {
	v := e.verifier.Load()
	if v == nil {
		return nil, false
	}

	idToken, err := v.Verify(ctx, token)
	if err != nil {
		return nil, false
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, false
	}

	return claims, true
}
