package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"vishalaksha/models"
	"vishalaksha/services/yogdaan"
	"vishalaksha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// YogdaanHandler exposes the Yogdaan intake form over HTTP.
type YogdaanHandler struct {
	Service yogdaan.Service
	Logger  *zap.Logger
}

// NewYogdaanHandler creates a new YogdaanHandler instance.
func NewYogdaanHandler(svc yogdaan.Service, logger *zap.Logger) *YogdaanHandler {
	return &YogdaanHandler{Service: svc, Logger: logger}
}

// SubmitHandler accepts the multipart intake form with up to two optional
// files. Files are spooled to disk and removed once the attempt finishes.
func (h *YogdaanHandler) SubmitHandler(c *gin.Context) {
	form := models.YogdaanForm{
		Name:         c.PostForm("name"),
		Mobile:       c.PostForm("mobile"),
		DOB:          c.PostForm("dob"),
		PlaceOfBirth: c.PostForm("placeOfBirth"),
		Query:        c.PostForm("query"),
	}

	kundliMap, err := h.spoolFile(c, "kundliMap")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read uploaded file", err.Error())
		return
	}
	if kundliMap != nil {
		defer os.Remove(kundliMap.LocalPath)
	}

	kundliScheme, err := h.spoolFile(c, "kundliScheme")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read uploaded file", err.Error())
		return
	}
	if kundliScheme != nil {
		defer os.Remove(kundliScheme.LocalPath)
	}

	submission, err := h.Service.Submit(c.Request.Context(), yogdaan.SubmissionInput{
		Form:         form,
		KundliMap:    kundliMap,
		KundliScheme: kundliScheme,
	})
	if err != nil {
		var vErr *yogdaan.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "missing required details", vErr.Error())
			return
		}
		h.Logger.Error("yogdaan submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Submission Failed",
			"Please try again later or contact us directly.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      submission.ID,
		"status":  submission.Status,
		"message": "Submission Successful! Your Yogdaan request has been submitted. We'll get back to you soon.",
	})
}

// spoolFile saves an optional multipart file to a temp path. A missing
// file is not an error; it simply yields nil.
func (h *YogdaanHandler) spoolFile(c *gin.Context, field string) (*yogdaan.FileInput, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	// A unique spool path per request; concurrent submissions may carry the
	// same filename.
	tmp, err := os.CreateTemp("", "yogdaan-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return nil, err
	}
	tmp.Close()

	if err := c.SaveUploadedFile(fileHeader, tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}
	return &yogdaan.FileInput{
		LocalPath: tmp.Name(),
		Filename:  filepath.Base(fileHeader.Filename),
	}, nil
}
