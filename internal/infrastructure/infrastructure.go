// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, storage, auth) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/jobtracker/internal/config"
	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/database"
	"github.com/JaimeStill/jobtracker/pkg/lifecycle"
	"github.com/JaimeStill/jobtracker/pkg/storage"
)

// Auth groups the credential systems: the local token issuer, the password
// hasher, and the extractor that resolves bearer tokens to principals.
type Auth struct {
	Issuer    *auth.Issuer
	Hasher    auth.Hasher
	Extractor *auth.Extractor
	// External is nil unless an external identity provider is configured.
	External *auth.External
}

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Auth      *Auth
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	a, err := newAuth(&cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("auth init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Auth:      a,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	if i.Auth.External != nil {
		if err := i.Auth.External.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("identity provider start failed: %w", err)
		}
	}
	return nil
}

func newAuth(cfg *auth.Config, logger *slog.Logger) (*Auth, error) {
	issuer, err := auth.NewIssuer(cfg)
	if err != nil {
		return nil, err
	}

	a := &Auth{
		Issuer: issuer,
		Hasher: auth.NewHasher(cfg.BcryptCost),
	}

	if ext := auth.NewExternal(&cfg.External, logger); ext != nil {
		a.External = ext
		a.Extractor = auth.NewExtractor(issuer, ext)
	} else {
		a.Extractor = auth.NewExtractor(issuer)
	}

	return a, nil
}
