package infrastructure_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/config"
	"github.com/JaimeStill/jobtracker/internal/infrastructure"
	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/database"
	"github.com/JaimeStill/jobtracker/pkg/storage"
)

const azuriteConnString = "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1;"

func validConfig() *config.Config {
	return &config.Config{
		Database: database.Config{
			Host:            "localhost",
			Port:            5432,
			Name:            "jobtracker",
			User:            "jobtracker",
			Password:        "jobtracker",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: "15m",
			ConnTimeout:     "5s",
		},
		Storage: storage.Config{
			Provider:         storage.ProviderAzure,
			ContainerName:    "attachments",
			ConnectionString: azuriteConnString,
		},
		Auth: auth.Config{
			SigningSecret: "0123456789abcdef0123456789abcdef",
			Issuer:        "jobtracker",
			Audience:      "jobtracker",
			TokenLifetime: "24h",
			BcryptCost:    4,
		},
		LogLevel: "info",
		Version:  "0.1.0",
	}
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("Lifecycle is nil")
	}
	if infra.Logger == nil {
		t.Error("Logger is nil")
	}
	if infra.Database == nil {
		t.Error("Database is nil")
	}
	if infra.Storage == nil {
		t.Error("Storage is nil")
	}
	if infra.Auth == nil || infra.Auth.Issuer == nil || infra.Auth.Extractor == nil {
		t.Fatal("Auth is incomplete")
	}
	if infra.Auth.External != nil {
		t.Error("External should be nil without an identity provider")
	}
}

func TestNewDatabaseConnection(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	conn := infra.Database.Connection()
	if conn == nil {
		t.Fatal("Database.Connection() returned nil")
	}
	conn.Close()
}

func TestNewS3Storage(t *testing.T) {
	cfg := validConfig()
	cfg.Storage = storage.Config{
		Provider:      storage.ProviderS3,
		ContainerName: "attachments",
		S3: storage.S3Config{
			Region:          "us-east-1",
			Endpoint:        "http://127.0.0.1:9000",
			AccessKeyID:     "minio",
			SecretAccessKey: "minio-secret",
			UsePathStyle:    true,
		},
	}

	if _, err := infrastructure.New(cfg); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestNewIssuedTokenResolves(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	token, err := infra.Auth.Issuer.Issue(uuid.New(), "caller@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	p, err := infra.Auth.Extractor.Extract(t.Context(), "Bearer "+token)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if p.Email != "caller@example.com" {
		t.Errorf("Email = %q", p.Email)
	}
}

func TestNewInvalidStorageConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.ConnectionString = "not-a-connection-string"

	if _, err := infrastructure.New(cfg); err == nil {
		t.Fatal("expected error for invalid storage connection string")
	}
}

func TestNewInvalidAuthConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.SigningSecret = ""

	if _, err := infrastructure.New(cfg); err == nil {
		t.Fatal("expected error for missing signing secret")
	}
}
