package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
// Object paths map onto Cloudinary public IDs, so the same
// folder/timestamp-filename scheme works on both backends.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService creates a new CloudinaryStorageService.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadFile uploads the local file under the object path as public ID.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, objectPath string) error {
	overwrite := true
	_, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		PublicID:     publicID(objectPath),
		ResourceType: "auto",
		Overwrite:    &overwrite,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to cloudinary: %w", err)
	}
	return nil
}

// DownloadURL resolves the delivery URL for an uploaded object.
func (s *CloudinaryStorageService) DownloadURL(ctx context.Context, objectPath string) (string, error) {
	img, err := s.cld.Image(publicID(objectPath))
	if err != nil {
		return "", fmt.Errorf("failed to build cloudinary asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build cloudinary URL: %w", err)
	}
	return url, nil
}

// publicID strips the file extension; Cloudinary appends its own based on
// the delivered format.
func publicID(objectPath string) string {
	if idx := strings.LastIndex(objectPath, "."); idx > strings.LastIndex(objectPath, "/") {
		return objectPath[:idx]
	}
	return objectPath
}
