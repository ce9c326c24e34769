package storage

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// CloudinaryStorage uploads transfer slips through Cloudinary's signed upload
// endpoint. Only the returned URL is kept; the service never stores image
// bytes itself.
type CloudinaryStorage struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	client    *http.Client
}

type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func NewCloudinaryStorage(cfg Config) (*CloudinaryStorage, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}

	return &CloudinaryStorage{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		client:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	publicID := strings.TrimSuffix(filename, path.Ext(filename))
	if s.folder != "" {
		publicID = s.folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Cloudinary signs the alphabetically ordered params plus the secret.
	toSign := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, s.apiSecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(toSign)))

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(data))
	form.Add("api_key", s.apiKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", signature)

	endpoint := "https://api.cloudinary.com/v1_1/" + s.cloudName + "/image/upload"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary upload failed with status %d", resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode cloudinary response: %w", err)
	}

	if result.SecureURL != "" {
		return result.SecureURL, nil
	}

	if result.URL == "" {
		return "", errors.New("cloudinary response contained no url")
	}

	return result.URL, nil
}
