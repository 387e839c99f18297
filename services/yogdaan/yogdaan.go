package yogdaan

import (
	"context"
	"fmt"
	"strings"
	"time"

	yogdaanRepo "vishalaksha/database/repository/yogdaan"
	"vishalaksha/models"
	"vishalaksha/services/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	kundliMapFolder    = "yogdaan/kundli-maps"
	kundliSchemeFolder = "yogdaan/kundli-schemes"
)

// FileInput points at a spooled upload on local disk together with the
// original filename the object path is derived from.
type FileInput struct {
	LocalPath string
	Filename  string
}

// SubmissionInput is one intake attempt: the text fields plus up to two
// optional files.
type SubmissionInput struct {
	Form         models.YogdaanForm
	KundliMap    *FileInput
	KundliScheme *FileInput
}

// ValidationError reports the field that blocked a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// Service handles Yogdaan intake submissions.
type Service interface {
	Submit(ctx context.Context, input SubmissionInput) (*models.YogdaanSubmission, error)
}

// DefaultYogdaanService uploads attached files sequentially (map before
// scheme), resolves their public URLs, and then writes one submission
// document. Files already uploaded when a later step fails are left in
// place.
type DefaultYogdaanService struct {
	Repo    yogdaanRepo.Repository
	Storage storage.StorageService
	Logger  *zap.Logger

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultYogdaanService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Submit runs one intake attempt end to end.
func (s *DefaultYogdaanService) Submit(ctx context.Context, input SubmissionInput) (*models.YogdaanSubmission, error) {
	if err := validateForm(input.Form); err != nil {
		return nil, err
	}

	now := s.now()

	kundliMapURL, err := s.uploadIfPresent(ctx, input.KundliMap, kundliMapFolder, now)
	if err != nil {
		return nil, err
	}
	kundliSchemeURL, err := s.uploadIfPresent(ctx, input.KundliScheme, kundliSchemeFolder, now)
	if err != nil {
		return nil, err
	}

	submission := models.YogdaanSubmission{
		ID:              uuid.New().String(),
		Name:            input.Form.Name,
		Mobile:          input.Form.Mobile,
		DOB:             input.Form.DOB,
		PlaceOfBirth:    input.Form.PlaceOfBirth,
		Query:           input.Form.Query,
		KundliMapURL:    kundliMapURL,
		KundliSchemeURL: kundliSchemeURL,
		SubmittedAt:     now,
		Status:          models.YogdaanStatusPending,
	}

	if err := s.Repo.Create(&submission); err != nil {
		s.Logger.Error("yogdaan submission save failed",
			zap.String("kundliMapUrl", kundliMapURL),
			zap.String("kundliSchemeUrl", kundliSchemeURL),
			zap.Error(err))
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	return &submission, nil
}

// uploadIfPresent uploads the file and resolves its public URL. A nil file
// yields an empty URL without touching storage.
func (s *DefaultYogdaanService) uploadIfPresent(ctx context.Context, file *FileInput, folder string, now time.Time) (string, error) {
	if file == nil {
		return "", nil
	}
	objectPath := fmt.Sprintf("%s/%d-%s", folder, now.UnixMilli(), file.Filename)
	if err := s.Storage.UploadFile(ctx, file.LocalPath, objectPath); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", file.Filename, err)
	}
	url, err := s.Storage.DownloadURL(ctx, objectPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve download URL for %s: %w", objectPath, err)
	}
	return url, nil
}

func validateForm(form models.YogdaanForm) error {
	required := []struct {
		field string
		value string
	}{
		{"name", form.Name},
		{"mobile", form.Mobile},
		{"dob", form.DOB},
		{"placeOfBirth", form.PlaceOfBirth},
		{"query", form.Query},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Reason: "is required"}
		}
	}
	if len([]rune(form.Query)) > models.YogdaanQueryMaxLen {
		return &ValidationError{
			Field:  "query",
			Reason: fmt.Sprintf("must be at most %d characters", models.YogdaanQueryMaxLen),
		}
	}
	return nil
}
