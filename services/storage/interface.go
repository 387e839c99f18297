package storage

import "context"

// StorageService is the object-storage facade used by the intake flow.
// UploadFile stores the file at objectPath; DownloadURL resolves the
// public URL for an already-uploaded object.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, objectPath string) error
	DownloadURL(ctx context.Context, objectPath string) (string, error)
}
