package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"

	"github.com/omnicloud/omnicloud-desktop/internal/model"
)

// API paths
const (
	ListPath     = "/list"
	UploadPath   = "/upload"
	DownloadPath = "/download/"
)

// Multipart field names
const (
	FileField = "file"
	TextField = "text"
)

// Envelope is the JSON wrapper all server responses use.
type Envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// envelopeOKCode is the application-level success code inside the envelope
const envelopeOKCode = 200

// Client talks to the remote storage server.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client // optional, defaults to http.DefaultClient
}

// New creates a new client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL repoints the client at a different server. Requests already in
// flight keep the URL they were built with.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

// List fetches all file descriptors from the server, in server order.
// Callers that want newest-first display reverse the result themselves.
func (c *Client) List(ctx context.Context) ([]model.FileItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL()+ListPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Op: "list", Status: resp.StatusCode}
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &ProtocolError{Message: err.Error()}
	}

	if env.Code != envelopeOKCode {
		return nil, &ProtocolError{Code: env.Code, Message: env.Message}
	}

	var items []model.FileItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		// data was present but not a list of file descriptors
		return nil, &ProtocolError{Code: env.Code, Message: env.Message}
	}

	return items, nil
}

// Upload sends file content with an optional description as a multipart POST.
// The decoded envelope is returned verbatim; callers only need success/failure.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader, description string) (*Envelope, error) {
	body := &strings.Builder{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(FileField, filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("upload: reading file content: %w", err)
	}

	if description != "" {
		if err := writer.WriteField(TextField, description); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+UploadPath, strings.NewReader(body.String()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Op: "upload", Status: resp.StatusCode}
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &ProtocolError{Message: err.Error()}
	}

	return &env, nil
}

// DownloadURL builds the direct download/preview URL for a stored file.
// Pure string construction, no I/O.
func (c *Client) DownloadURL(id string) string {
	return c.BaseURL() + DownloadPath + id
}
