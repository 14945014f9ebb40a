// Package decorate calls the external media-decoration service: raw
// image bytes plus a style tag in, transformed bytes plus a mime type
// out. Persisting the result as a DecoratedPhoto is the caller's job.
package decorate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/travver/travver/pkg/remote"
)

// MaxImageBytes caps the upload size at 10MB.
const MaxImageBytes = 10 * 1024 * 1024

// Styles lists the decoration styles the service accepts.
func Styles() []string {
	return []string{"watercolor", "oil_painting", "sketch", "vintage", "movie_poster", "pop_art"}
}

// ValidStyle reports whether the service accepts the style tag.
func ValidStyle(style string) bool {
	for _, s := range Styles() {
		if s == style {
			return true
		}
	}
	return false
}

// Result is the transformed media payload.
type Result struct {
	Image    []byte
	MimeType string
}

// Client talks to the decoration service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 180 * time.Second}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// decorateResponse is the service's reply envelope. The json []byte
// decoding handles the base64 field directly.
type decorateResponse struct {
	Success        bool   `json:"success"`
	ResultImage    []byte `json:"result_image_base64"`
	ResultMimeType string `json:"result_mime_type"`
	Style          string `json:"style"`
}

// Decorate uploads the image and returns the styled rendition.
func (c *Client) Decorate(ctx context.Context, filename string, image []byte, style string) (*Result, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("decorate: empty image")
	}
	if len(image) > MaxImageBytes {
		return nil, fmt.Errorf("decorate: image %d bytes exceeds the %d byte limit", len(image), MaxImageBytes)
	}
	if !ValidStyle(style) {
		return nil, fmt.Errorf("decorate: unknown style %q", style)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("decorate: build form: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(image)); err != nil {
		return nil, fmt.Errorf("decorate: build form: %w", err)
	}
	if err := form.WriteField("style", style); err != nil {
		return nil, fmt.Errorf("decorate: build form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("decorate: build form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/memories/photo", &body)
	if err != nil {
		return nil, fmt.Errorf("decorate: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, remote.Classify(err)
	}
	defer resp.Body.Close()
	c.logger().Debug("decorate request", "style", style, "bytes", len(image), "status", resp.StatusCode, "elapsed", time.Since(start))

	if err := remote.FromResponse(resp); err != nil {
		return nil, err
	}

	var envelope decorateResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decorate: decode response: %w", err)
	}
	if len(envelope.ResultImage) == 0 {
		return nil, fmt.Errorf("decorate: response carried no image")
	}
	mimeType := envelope.ResultMimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return &Result{Image: envelope.ResultImage, MimeType: mimeType}, nil
}
