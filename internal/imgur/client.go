package imgur

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxImageBytes caps uploads accepted from clients.
const MaxImageBytes = 10 << 20

var (
	ErrNotConfigured = errors.New("image upload is not configured")
	ErrEmptyImage    = errors.New("image is empty")
	ErrImageTooLarge = errors.New("image exceeds 10MB")
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, image io.Reader) (string, error)
}

// Client talks to the Imgur v3 image endpoint.
type Client struct {
	baseURL  string
	clientID string
	http     *http.Client
}

// NewClient builds a client for baseURL (e.g. https://api.imgur.com).
func NewClient(baseURL, clientID string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	Data struct {
		Link  string `json:"link"`
		Error string `json:"error"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// Upload posts the image as multipart field "image" and returns data.link.
func (c *Client) Upload(ctx context.Context, filename string, image io.Reader) (string, error) {
	if c.clientID == "" {
		return "", ErrNotConfigured
	}

	data, err := io.ReadAll(io.LimitReader(image, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	if filename == "" {
		filename = uuid.NewString()
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/3/image", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.clientID)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("imgur upload: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("imgur upload: decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !parsed.Success || parsed.Data.Link == "" {
		msg := parsed.Data.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("imgur upload failed: status %d: %s", resp.StatusCode, msg)
	}
	return parsed.Data.Link, nil
}
