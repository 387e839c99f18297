package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// FirebaseStorageService implements StorageService using Firebase Storage.
type FirebaseStorageService struct {
	client     *gcs.Client
	bucketName string
}

// NewFirebaseStorageService creates a new FirebaseStorageService.
func NewFirebaseStorageService(credentialsFile, bucketName string) (*FirebaseStorageService, error) {
	ctx := context.Background()
	client, err := gcs.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &FirebaseStorageService{client: client, bucketName: bucketName}, nil
}

// UploadFile uploads the local file to objectPath with a public-read ACL.
func (s *FirebaseStorageService) UploadFile(ctx context.Context, localFilePath, objectPath string) error {
	file, err := os.Open(localFilePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	obj := s.client.Bucket(s.bucketName).Object(objectPath)
	w := obj.NewWriter(ctx)
	w.ACL = []gcs.ACLRule{{Entity: gcs.AllUsers, Role: gcs.RoleReader}}
	if ext := filepath.Ext(objectPath); ext != "" {
		w.ObjectAttrs.ContentType = mime.TypeByExtension(ext)
	}

	if _, err := io.Copy(w, file); err != nil {
		return fmt.Errorf("failed to copy file to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}

// DownloadURL returns the public URL for an uploaded object.
func (s *FirebaseStorageService) DownloadURL(ctx context.Context, objectPath string) (string, error) {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		s.bucketName, url.PathEscape(objectPath)), nil
}
