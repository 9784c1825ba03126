// Package storage uploads media files to an external hosting service and
// hands back the public URL recorded on the entity.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"streamhub/domain/model"
	"streamhub/infrastructure/configuration"
	"streamhub/infrastructure/logger"
)

type IMediaStorage interface {
	// Upload sends the local file to the media host and returns its public
	// URL. The local file is left in place; callers own cleanup.
	Upload(ctx context.Context, localPath string) (string, error)
}

type MediaStorage struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
}

func NewMediaStorage(cfg configuration.Media) IMediaStorage {
	return &MediaStorage{
		uploadURL:    cfg.UploadURL,
		uploadPreset: cfg.UploadPreset,
		httpClient:   &http.Client{Timeout: 2 * time.Minute},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func (s *MediaStorage) Upload(ctx context.Context, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("storage: open upload file failed")
		return "", model.NewInternalError("File could not be uploaded")
	}
	defer file.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		defer pw.Close()
		if err := writer.WriteField("upload_preset", s.uploadPreset); err != nil {
			pw.CloseWithError(err)
			return
		}
		part, err := writer.CreateFormFile("file", filepath.Base(localPath))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, pr)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("storage: build upload request failed")
		return "", model.NewInternalError("File could not be uploaded")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := s.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("storage: upload request failed")
		return "", model.NewInternalError("File could not be uploaded")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		logger.GetLogger().WithField("status", res.StatusCode).Error("storage: upload rejected by media host")
		return "", model.NewInternalError("File could not be uploaded")
	}

	var parsed uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		logger.GetLogger().WithField("error", err).Error("storage: decode upload response failed")
		return "", model.NewInternalError("File could not be uploaded")
	}
	if parsed.SecureURL != "" {
		return parsed.SecureURL, nil
	}
	if parsed.URL != "" {
		return parsed.URL, nil
	}
	return "", model.NewInternalError("File could not be uploaded")
}

// TempFilePath returns a collision-free path under dir for a received upload.
func TempFilePath(dir, originalName string) string {
	return filepath.Join(dir, fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(originalName)))
}

// Cleanup removes a temp file, logging instead of failing when it is already
// gone.
func Cleanup(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.GetLogger().WithField("error", err).Error("storage: remove temp file failed")
	}
}
