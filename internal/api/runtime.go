package api

import (
	"github.com/JaimeStill/jobtracker/internal/attachments"
	"github.com/JaimeStill/jobtracker/internal/config"
	"github.com/JaimeStill/jobtracker/internal/infrastructure"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Limits     attachments.Limits
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Auth:      infra.Auth,
		},
		Pagination: cfg.API.Pagination,
		Limits: attachments.Limits{
			MaxSize:        cfg.API.MaxAttachmentSizeBytes(),
			UploadExpiry:   cfg.API.UploadURLExpiryDuration(),
			DownloadExpiry: cfg.API.DownloadURLExpiryDuration(),
		},
	}
}
