package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"lead-console/internal/domains/upload/model"
)

// =====================================================
// LEAD API CLIENT
// =====================================================

const (
	inspectPath = "/leads/bulk-upload/inspect"
	commitPath  = "/leads/bulk-upload"
)

// Client talks to the lead-management backend. It attaches the bearer token
// on every request; timeout and retry policy belong to the injected
// http.Client, not to this layer.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given API base URL (e.g.
// "http://localhost:8080/api/v1") and opaque bearer token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CommitRequest carries everything the commit endpoint accepts. UploadToken
// is preferred; FilePath is the defensive fallback when no token was ever
// obtained. SelectedSheets nil means "omit the field" (CSV commits).
type CommitRequest struct {
	UploadToken    string
	FilePath       string
	Source         string
	SelectedSheets []string
}

// Inspect submits the raw file for server-side inspection and returns the
// upload token plus preview.
func (c *Client) Inspect(ctx context.Context, filePath string) (*model.InspectionResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writeFilePart(writer, "file", filePath); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var result model.InspectionResult
	if err := c.postMultipart(ctx, inspectPath, body, writer.FormDataContentType(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Commit performs the actual import with a previously-obtained token (or the
// raw file as fallback) and returns the structured result.
func (c *Client) Commit(ctx context.Context, req CommitRequest) (*model.UploadResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if req.UploadToken != "" {
		if err := writer.WriteField("uploadToken", req.UploadToken); err != nil {
			return nil, fmt.Errorf("failed to write uploadToken field: %w", err)
		}
	} else {
		if err := writeFilePart(writer, "file", req.FilePath); err != nil {
			return nil, err
		}
	}

	source := req.Source
	if source == "" {
		source = model.DefaultSource
	}
	if err := writer.WriteField("source", source); err != nil {
		return nil, fmt.Errorf("failed to write source field: %w", err)
	}

	if req.SelectedSheets != nil {
		sheetsJSON, err := json.Marshal(req.SelectedSheets)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal selectedSheets: %w", err)
		}
		if err := writer.WriteField("selectedSheets", string(sheetsJSON)); err != nil {
			return nil, fmt.Errorf("failed to write selectedSheets field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var result model.UploadResult
	if err := c.postMultipart(ctx, commitPath, body, writer.FormDataContentType(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) postMultipart(ctx context.Context, path string, body io.Reader, contentType string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call lead API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func writeFilePart(writer *multipart.Writer, field, filePath string) error {
	src, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	part, err := writer.CreateFormFile(field, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("failed to copy file into request: %w", err)
	}
	return nil
}
