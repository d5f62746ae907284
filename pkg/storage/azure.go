package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"

	"github.com/JaimeStill/jobtracker/pkg/lifecycle"
)

// Header Azure requires on Put Blob requests.
const (
	blobTypeHeader = "x-ms-blob-type"
	blockBlob      = "BlockBlob"
)

// Backdates SAS start times to tolerate clock drift between client and service.
const clockSkew = 5 * time.Minute

type azure struct {
	client    *azblob.Client
	sharedKey *azblob.SharedKeyCredential
	container string
	logger    *slog.Logger
	now       func() time.Time
}

func newAzure(cfg *Config, logger *slog.Logger) (*azure, error) {
	a := &azure{
		container: cfg.ContainerName,
		logger:    logger,
		now:       time.Now,
	}

	if cfg.ConnectionString != "" {
		client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}

		name, key, err := parseAccountKey(cfg.ConnectionString)
		if err != nil {
			return nil, err
		}

		cred, err := azblob.NewSharedKeyCredential(name, key)
		if err != nil {
			return nil, fmt.Errorf("create shared key credential: %w", err)
		}

		a.client = client
		a.sharedKey = cred
		return a, nil
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("create azure credential: %w", err)
	}

	client, err := azblob.NewClient(cfg.AccountURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	a.client = client
	return a, nil
}

func (a *azure) Start(lc *lifecycle.Coordinator) error {
	a.logger.Info("starting storage system")

	lc.OnStartup(func() error {
		_, err := a.client.CreateContainer(lc.Context(), a.container, nil)
		if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			a.logger.Error("storage container initialization failed", "error", err)
			return fmt.Errorf("storage container: %w", err)
		}

		a.logger.Info("storage container ready", "container", a.container)
		return nil
	})

	return nil
}

func (a *azure) UploadURL(ctx context.Context, key, contentType string, ttl time.Duration) (*SignedURL, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	perms := sas.BlobPermissions{Create: true, Write: true}
	values := a.signatureValues(key, perms.String(), ttl)

	url, err := a.sign(ctx, key, values)
	if err != nil {
		return nil, err
	}

	return &SignedURL{
		URL:    url,
		Method: http.MethodPut,
		Headers: map[string]string{
			"Content-Type": contentType,
			blobTypeHeader: blockBlob,
		},
		ExpiresAt: values.ExpiryTime,
	}, nil
}

func (a *azure) DownloadURL(ctx context.Context, key, fileName string, ttl time.Duration) (*SignedURL, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	perms := sas.BlobPermissions{Read: true}
	values := a.signatureValues(key, perms.String(), ttl)
	values.ContentDisposition = attachmentDisposition(fileName)

	url, err := a.sign(ctx, key, values)
	if err != nil {
		return nil, err
	}

	return &SignedURL{
		URL:       url,
		Method:    http.MethodGet,
		ExpiresAt: values.ExpiryTime,
	}, nil
}

func (a *azure) Find(ctx context.Context, key string) (*Object, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	props, err := a.blobClient(key).GetProperties(ctx, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get blob properties %s: %w", key, err)
	}

	obj := &Object{
		Key:          key,
		LastModified: props.LastModified,
	}
	if props.ContentType != nil {
		obj.ContentType = *props.ContentType
	}
	if props.ContentLength != nil {
		obj.ContentLength = *props.ContentLength
	}

	return obj, nil
}

func (a *azure) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	_, err := a.client.DeleteBlob(ctx, a.container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete blob %s: %w", key, err)
	}

	return nil
}

func (a *azure) blobClient(key string) *blob.Client {
	return a.client.ServiceClient().NewContainerClient(a.container).NewBlobClient(key)
}

func (a *azure) signatureValues(key, permissions string, ttl time.Duration) sas.BlobSignatureValues {
	now := a.now().UTC()
	return sas.BlobSignatureValues{
		StartTime:     now.Add(-clockSkew),
		ExpiryTime:    now.Add(ttl),
		Permissions:   permissions,
		ContainerName: a.container,
		BlobName:      key,
	}
}

// sign signs with the account key when one is configured, otherwise with a
// user delegation key obtained from the service for the lifetime of the URL.
func (a *azure) sign(ctx context.Context, key string, values sas.BlobSignatureValues) (string, error) {
	var (
		params sas.QueryParameters
		err    error
	)

	if a.sharedKey != nil {
		params, err = values.SignWithSharedKey(a.sharedKey)
	} else {
		info := service.KeyInfo{
			Start:  to.Ptr(values.StartTime.UTC().Format(sas.TimeFormat)),
			Expiry: to.Ptr(values.ExpiryTime.UTC().Format(sas.TimeFormat)),
		}

		udc, udcErr := a.client.ServiceClient().GetUserDelegationCredential(ctx, info, nil)
		if udcErr != nil {
			return "", fmt.Errorf("get user delegation key: %w", udcErr)
		}
		params, err = values.SignWithUserDelegation(udc)
	}

	if err != nil {
		return "", fmt.Errorf("sign %s: %w", key, err)
	}

	return a.blobClient(key).URL() + "?" + params.Encode(), nil
}

// parseAccountKey extracts AccountName and AccountKey from a storage
// connection string.
func parseAccountKey(connectionString string) (name, key string, err error) {
	for part := range strings.SplitSeq(connectionString, ";") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "accountname":
			name = v
		case "accountkey":
			key = v
		}
	}

	if name == "" || key == "" {
		return "", "", fmt.Errorf("connection string must contain AccountName and AccountKey")
	}
	return name, key, nil
}
