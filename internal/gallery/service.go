package gallery

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/omnicloud/omnicloud-desktop/internal/model"
)

// ViewMode selects how the gallery renders the visible items
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// ErrorFetchFailed is the user-facing message shown when a list fetch fails,
// regardless of whether the failure was transport, HTTP status, or envelope.
const ErrorFetchFailed = "Failed to connect to the server. Please check your network connection or ensure the server address is correct."

// Service owns the gallery view state
type Service struct {
	client Lister

	mu             sync.RWMutex
	items          []model.FileItem
	activeCategory model.Category
	searchQuery    string
	viewMode       ViewMode
	loading        bool
	lastError      string

	// refreshMu serializes overlapping Refresh calls so that concurrent
	// triggers (manual retry plus post-upload reconcile) cannot race on the
	// stored items; the later completed call wins deterministically.
	refreshMu sync.Mutex

	onUpdate func() // callback for UI updates
}

// NewService creates a new gallery state service
func NewService(client Lister) *Service {
	return &Service{
		client:         client,
		activeCategory: model.CategoryAll,
		viewMode:       ViewModeGrid,
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (s *Service) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// Refresh fetches the file list from the server and replaces the stored
// snapshot wholesale. The server appends new items, so the list is reversed
// once for newest-first display. On failure the previous items are kept in
// memory and a user-facing error message is set; the view renders only the
// error state while it is present.
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
	s.notifyUpdate()

	items, err := s.client.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		log.Printf("Gallery refresh failed: %v", err)
		s.lastError = ErrorFetchFailed
	} else {
		reversed := make([]model.FileItem, len(items))
		for i, item := range items {
			reversed[len(items)-1-i] = item
		}
		s.items = reversed
		log.Printf("Gallery refreshed: %d items", len(reversed))
	}
	s.mu.Unlock()
	s.notifyUpdate()

	return err
}

// VisibleItems returns the items matching the active category and search
// query, in stored (newest-first) order
func (s *Service) VisibleItems() []model.FileItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(s.searchQuery)

	var visible []model.FileItem
	for _, item := range s.items {
		if s.activeCategory != model.CategoryAll && item.Category() != s.activeCategory {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Text), query) {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// Items returns the full stored snapshot
func (s *Service) Items() []model.FileItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.FileItem, len(s.items))
	copy(items, s.items)
	return items
}

// SetCategory sets the active category filter
func (s *Service) SetCategory(category model.Category) {
	s.mu.Lock()
	s.activeCategory = category
	s.mu.Unlock()
	s.notifyUpdate()
}

// Category returns the active category filter
func (s *Service) Category() model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeCategory
}

// SetSearchQuery sets the free-text search filter
func (s *Service) SetSearchQuery(query string) {
	s.mu.Lock()
	s.searchQuery = query
	s.mu.Unlock()
	s.notifyUpdate()
}

// SearchQuery returns the free-text search filter
func (s *Service) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SetViewMode switches between grid and list rendering
func (s *Service) SetViewMode(mode ViewMode) {
	s.mu.Lock()
	s.viewMode = mode
	s.mu.Unlock()
	s.notifyUpdate()
}

// ViewMode returns the current view mode
func (s *Service) ViewMode() ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

// Loading reports whether a refresh is in flight
func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the user-facing error message from the last failed
// refresh, or an empty string
func (s *Service) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Online reports server reachability for the status indicator: true once a
// refresh has completed without error and none is in flight
func (s *Service) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError == "" && !s.loading
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
