package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores opaque trip documents (proof-of-delivery images,
// trip reports). The core only ever handles the returned identifier; file
// contents are never interpreted.
type StorageService interface {
	// UploadDataURI uploads an inline base64 data URI into the folder and
	// returns the permanent identifier.
	UploadDataURI(ctx context.Context, dataURI, destFolder string) (string, error)
	// UploadFile uploads a local file into the folder and returns the
	// permanent identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile deletes a stored file by its identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a public URL for a stored file.
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
