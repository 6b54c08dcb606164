package drive

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	// googleDocMimeType makes Drive convert the upload into a Google Doc.
	googleDocMimeType = "application/vnd.google-apps.document"
	// sourceMimeType is the MIME type of the minute text we upload.
	sourceMimeType = "text/markdown"
)

// FileInfo identifies an uploaded minute document.
type FileInfo struct {
	ID          string `json:"id"`
	WebViewLink string `json:"webViewLink"`
}

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
}

// NewClient creates a Drive client on an authenticated HTTP client
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return &Client{service: service}, nil
}

// UploadDocument uploads minute text as a Google Doc and returns its id
// and view link.
func (c *Client) UploadDocument(ctx context.Context, name, content string) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("document name is required")
	}

	file := &drive.File{
		Name:     name,
		MimeType: googleDocMimeType,
	}

	created, err := c.service.Files.Create(file).
		Context(ctx).
		Media(strings.NewReader(content), googleapi.ContentType(sourceMimeType)).
		Fields("id, webViewLink").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	return &FileInfo{
		ID:          created.Id,
		WebViewLink: created.WebViewLink,
	}, nil
}
