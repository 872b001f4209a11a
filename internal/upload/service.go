package upload

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/omnicloud/omnicloud-desktop/internal/api"
)

// Uploader sends file content to the server.
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader, description string) (*api.Envelope, error)
}

// Service handles upload operations
type Service struct {
	client Uploader

	mu        sync.RWMutex
	uploading bool

	onUpdate   func() // callback for UI updates (uploading flag changes)
	onUploaded func() // callback after a successful upload (list reconcile)
}

// NewService creates a new upload service
func NewService(client Uploader) *Service {
	return &Service{client: client}
}

// SetUpdateCallback sets the callback invoked when the uploading flag changes
func (s *Service) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// SetUploadedCallback sets the callback invoked after a successful upload.
// The gallery uses it to refresh the list: the new item's identity is not
// known until the server reports it.
func (s *Service) SetUploadedCallback(callback func()) {
	s.onUploaded = callback
}

// Uploading reports whether an upload is in flight. The UI disables the
// upload control while true; the service itself does not reject overlap.
func (s *Service) Uploading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploading
}

// Submit uploads one file. The effective description is the trimmed user
// text when non-empty, otherwise the file's own name.
func (s *Service) Submit(ctx context.Context, filename string, content io.Reader, description string) error {
	requestID := generateRequestID()

	s.mu.Lock()
	s.uploading = true
	s.mu.Unlock()
	s.notifyUpdate()

	defer func() {
		s.mu.Lock()
		s.uploading = false
		s.mu.Unlock()
		s.notifyUpdate()
	}()

	effective := EffectiveDescription(description, filename)
	log.Printf("Upload %s: file=%s description=%q", requestID, filename, effective)

	if _, err := s.client.Upload(ctx, filename, content, effective); err != nil {
		log.Printf("Upload %s failed: %v", requestID, err)
		return err
	}

	log.Printf("Upload %s completed", requestID)

	if s.onUploaded != nil {
		s.onUploaded()
	}
	return nil
}

// EffectiveDescription returns the trimmed description, falling back to the
// filename when the user left it empty
func EffectiveDescription(description, filename string) string {
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		return trimmed
	}
	return filename
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

// generateRequestID generates a unique id used to correlate log lines
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "upload-" + uuid.NewString()
	}
	return "upload-" + id.String()
}
