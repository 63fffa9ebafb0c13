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

	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// Client uploads local files to the external image host and returns their
// public URL. Implementations must remove the local temp file whether the
// upload succeeds or fails.
type Client interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// HTTPClient is the default Client backed by a multipart upload endpoint
type HTTPClient struct {
	uploadURL  string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a storage client for the configured upload endpoint
func NewHTTPClient(cfg models.StorageConfig) *HTTPClient {
	return &HTTPClient{
		uploadURL: cfg.UploadURL,
		apiKey:    cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends the file to the image host and returns the secure URL. The
// local temp file is deleted regardless of the outcome.
func (c *HTTPClient) Upload(ctx context.Context, localPath string) (string, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil {
			logger.Warn("Failed to remove temp upload file",
				logger.String("path", localPath),
				logger.Err(err))
		}
	}()

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open upload file: %w", err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
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

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, pr)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	return result.SecureURL, nil
}
