// Package uploadapi provides the image upload endpoint backing the admin
// photo and project cover flows.
//
// Endpoint:
//   - POST /api/upload - multipart "file" field (operator session or API key)
//
// Only image content types are accepted and files are capped at 10 MiB.
// Stored objects are named portfolio/<unix-ms>-<sanitized-name>; the response
// carries the hosted URL the editor then writes into the content document.
package uploadapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/motadesign/folio/internal/app/system/jsonutil"
	"github.com/motadesign/folio/internal/app/system/uploads"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

// Handler handles upload API requests.
type Handler struct {
	fileStorage storage.Store
	logger      *zap.Logger
}

// NewHandler creates a new uploadapi handler.
func NewHandler(fileStorage storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// UploadHandler handles POST /api/upload.
//
// Response (200 OK):
//
//	{
//	    "success": true,
//	    "url": "https://.../portfolio/1756500000000-cover.jpg",
//	    "path": "portfolio/1756500000000-cover.jpg"
//	}
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploads.MaxFileSize); err != nil {
		jsonutil.ErrorWithDetails(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonutil.ErrorWithDetails(w, http.StatusBadRequest, "no file provided", uploads.ErrNoFile.Error())
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := uploads.Validate(contentType, header.Size); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, uploads.ErrTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		jsonutil.ErrorWithDetails(w, status, "upload rejected", err.Error())
		return
	}

	path := uploads.StoragePath(header.Filename, time.Now().UTC())

	opts := &storage.PutOptions{
		ContentType: contentType,
	}
	if err := h.fileStorage.Put(r.Context(), path, file, opts); err != nil {
		h.logger.Error("upload failed",
			zap.String("path", path),
			zap.String("content_type", contentType),
			zap.Error(err))
		jsonutil.ErrorWithDetails(w, http.StatusInternalServerError, "failed to store file", err.Error())
		return
	}

	url := h.fileStorage.URL(path)

	h.logger.Info("file uploaded",
		zap.String("path", path),
		zap.String("content_type", contentType),
		zap.Int64("size", header.Size))

	jsonutil.OK(w, map[string]any{
		"success": true,
		"url":     url,
		"path":    path,
	})
}
