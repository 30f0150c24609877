package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/restaurant-service/internal/config"
)

const uploadURLFormat = "https://api.cloudinary.com/v1_1/%s/image/upload"

// CloudinaryStore uploads images through Cloudinary's unsigned upload API.
type CloudinaryStore struct {
	cloudName    string
	uploadPreset string
	folder       string
	client       *http.Client
}

// NewCloudinaryStore builds the store from configuration.
func NewCloudinaryStore(cfg config.CloudinaryConfig) *CloudinaryStore {
	return &CloudinaryStore{
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		folder:       cfg.Folder,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one image and returns its secure URL. Each asset gets a
// unique public ID so re-uploads of the same filename never collide.
func (s *CloudinaryStore) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	if s.cloudName == "" {
		return "", fmt.Errorf("cloudinary cloud name not configured")
	}

	body := &strings.Builder{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("upload_preset", s.uploadPreset); err != nil {
		return "", err
	}
	if s.folder != "" {
		if err := writer.WriteField("folder", s.folder); err != nil {
			return "", err
		}
	}
	if err := writer.WriteField("public_id", publicID(filename)); err != nil {
		return "", err
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf(uploadURLFormat, s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body.String()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("cloudinary response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary upload failed: %s", parsed.Error.Message)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no url")
	}
	return parsed.SecureURL, nil
}

func publicID(filename string) string {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	return base + "-" + uuid.NewString()
}
