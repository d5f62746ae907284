// Package storage issues time-limited signed URLs for direct client
// transfers to object storage, with Azure Blob Storage and S3 implementations.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"strings"
	"time"

	"github.com/JaimeStill/jobtracker/pkg/lifecycle"
)

// System signs transfer URLs and manages stored objects. The server never
// handles object bytes itself.
type System interface {
	// Start registers a startup hook that verifies or creates the container.
	Start(lc *lifecycle.Coordinator) error
	// UploadURL returns a signed URL the client PUTs the object to, together
	// with the headers the client must send.
	UploadURL(ctx context.Context, key, contentType string, ttl time.Duration) (*SignedURL, error)
	// DownloadURL returns a signed GET URL that downloads the object as fileName.
	DownloadURL(ctx context.Context, key, fileName string, ttl time.Duration) (*SignedURL, error)
	// Find returns the stored object's metadata. Returns ErrNotFound if absent.
	Find(ctx context.Context, key string) (*Object, error)
	// Delete removes the object. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, key string) error
}

// SignedURL is a pre-authorized request against a single object.
type SignedURL struct {
	URL       string            `json:"url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// Object is the metadata of a stored object.
type Object struct {
	Key           string     `json:"key"`
	ContentType   string     `json:"content_type"`
	ContentLength int64      `json:"content_length"`
	LastModified  *time.Time `json:"last_modified,omitempty"`
}

// New creates a storage system for the configured provider. Clients are
// created here; no network calls are made until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	logger = logger.With("system", "storage", "provider", cfg.Provider)

	switch cfg.Provider {
	case ProviderAzure:
		return newAzure(cfg, logger)
	case ProviderS3:
		return newS3(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}

// attachmentDisposition renders a Content-Disposition header that makes
// browsers save the object under fileName.
func attachmentDisposition(fileName string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": fileName}); v != "" {
		return v
	}
	return "attachment"
}
