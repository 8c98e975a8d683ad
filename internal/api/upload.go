package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// UploadAPI wraps the /upload endpoints. Uploads are the one place the
// client speaks multipart instead of JSON.
type UploadAPI struct {
	client *Client
}

// NewUploadAPI creates the upload resource group.
func NewUploadAPI(client *Client) *UploadAPI {
	return &UploadAPI{client: client}
}

// UploadedImage is the backend's record of a stored image.
type UploadedImage struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

// Image uploads a single image for the given usage type
// (avatar, event, listing or post).
func (u *UploadAPI) Image(ctx context.Context, name string, content io.Reader, usage string) (*UploadedImage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(name))
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("reading upload content: %w", err)
	}
	if err := w.WriteField("type", usage); err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.client.baseURL+"/upload/image", &buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	u.client.authorize(req)

	resp, err := u.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		u.client.logger.Error("upload failed", "status", resp.StatusCode, "body", truncate(raw, 512))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	var out UploadedImage
	if err := Decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
