package gallery

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/omnicloud/omnicloud-desktop/internal/model"
)

// fakeLister returns canned responses and records call order.
type fakeLister struct {
	mu    sync.Mutex
	items []model.FileItem
	err   error
	calls int
}

func (f *fakeLister) List(ctx context.Context) ([]model.FileItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func TestNewService(t *testing.T) {
	service := NewService(&fakeLister{})

	if service.Category() != model.CategoryAll {
		t.Errorf("Expected default category ALL, got %s", service.Category())
	}
	if service.SearchQuery() != "" {
		t.Errorf("Expected empty default search query, got %q", service.SearchQuery())
	}
	if service.ViewMode() != ViewModeGrid {
		t.Errorf("Expected default view mode grid, got %s", service.ViewMode())
	}
	if service.Loading() {
		t.Error("Expected service to not be loading initially")
	}
}

func TestRefresh_ReversesServerOrder(t *testing.T) {
	lister := &fakeLister{items: []model.FileItem{{ID: "a"}, {ID: "b"}}}
	service := NewService(lister)

	if err := service.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	items := service.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].ID != "b" || items[1].ID != "a" {
		t.Errorf("Expected stored order [b a], got [%s %s]", items[0].ID, items[1].ID)
	}
}

func TestRefresh_FailureSetsErrorKeepsItems(t *testing.T) {
	lister := &fakeLister{items: []model.FileItem{{ID: "a"}}}
	service := NewService(lister)

	if err := service.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	lister.mu.Lock()
	lister.err = errors.New("connection refused")
	lister.mu.Unlock()

	err := service.Refresh(context.Background())
	if err == nil {
		t.Fatal("Expected refresh to return the fetch error")
	}

	if service.LastError() == "" {
		t.Error("Expected a non-empty user-facing error message")
	}
	if service.Loading() {
		t.Error("Expected loading to be cleared after a failed refresh")
	}
	// Stale snapshot stays in memory; the view renders the error instead
	if len(service.Items()) != 1 {
		t.Errorf("Expected stale items to be kept, got %d items", len(service.Items()))
	}
	if service.Online() {
		t.Error("Expected Online to be false while an error is set")
	}
}

func TestRefresh_ClearsPreviousError(t *testing.T) {
	lister := &fakeLister{err: errors.New("down")}
	service := NewService(lister)

	service.Refresh(context.Background())
	if service.LastError() == "" {
		t.Fatal("Expected error after failed refresh")
	}

	lister.mu.Lock()
	lister.err = nil
	lister.items = []model.FileItem{{ID: "a"}}
	lister.mu.Unlock()

	if err := service.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if service.LastError() != "" {
		t.Errorf("Expected error to be cleared, got %q", service.LastError())
	}
	if !service.Online() {
		t.Error("Expected Online to be true after a successful refresh")
	}
}

func TestRefresh_SerializesOverlappingCalls(t *testing.T) {
	lister := &fakeLister{items: []model.FileItem{{ID: "a"}}}
	service := NewService(lister)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.Refresh(context.Background())
		}()
	}
	wg.Wait()

	if service.Loading() {
		t.Error("Expected loading to be false after all refreshes completed")
	}
	if lister.calls != 8 {
		t.Errorf("Expected 8 serialized fetches, got %d", lister.calls)
	}
	if len(service.Items()) != 1 {
		t.Errorf("Expected 1 item after concurrent refreshes, got %d", len(service.Items()))
	}
}

func TestVisibleItems_DefaultFiltersPassEverything(t *testing.T) {
	lister := &fakeLister{items: []model.FileItem{
		{ID: "a", FileType: "image/png"},
		{ID: "b", FileType: "video/mp4"},
		{ID: "c"},
	}}
	service := NewService(lister)
	service.Refresh(context.Background())

	visible := service.VisibleItems()
	if len(visible) != 3 {
		t.Fatalf("Expected all 3 items visible, got %d", len(visible))
	}
	// Stored (reversed) order is preserved
	if visible[0].ID != "c" || visible[2].ID != "a" {
		t.Errorf("Expected stored order [c b a], got [%s %s %s]",
			visible[0].ID, visible[1].ID, visible[2].ID)
	}
}

func TestVisibleItems_CategoryFilter(t *testing.T) {
	lister := &fakeLister{items: []model.FileItem{
		{ID: "img", FileType: "image/png"},
		{ID: "vid", FileType: "video/mp4"},
		{ID: "doc", FileType: "application/pdf"},
		{ID: "untyped"},
	}}
	service := NewService(lister)
	service.Refresh(context.Background())

	service.SetCategory(model.CategoryImage)
	visible := service.VisibleItems()
	if len(visible) != 1 || visible[0].ID != "img" {
		t.Errorf("Expected only the image item, got %v", visible)
	}

	// Untyped items classify as documents
	service.SetCategory(model.CategoryDocument)
	visible = service.VisibleItems()
	if len(visible) != 2 {
		t.Errorf("Expected pdf and untyped items, got %d items", len(visible))
	}
}

func TestVisibleItems_SearchFilter(t *testing.T) {
	lister := &fakeLister{items: []model.FileItem{
		{ID: "a", Text: "Quarterly Report"},
		{ID: "b", Text: "holiday photos"},
		{ID: "c"}, // no text: matches only the empty query
	}}
	service := NewService(lister)
	service.Refresh(context.Background())

	service.SetSearchQuery("report")
	visible := service.VisibleItems()
	if len(visible) != 1 || visible[0].ID != "a" {
		t.Errorf("Expected case-insensitive match on 'report', got %v", visible)
	}

	service.SetSearchQuery("")
	if len(service.VisibleItems()) != 3 {
		t.Error("Expected empty query to match every item")
	}
}

func TestVisibleItems_CombinedFilters(t *testing.T) {
	lister := &fakeLister{items: []model.FileItem{
		{ID: "a", Text: "beach video", FileType: "video/mp4"},
		{ID: "b", Text: "beach photo", FileType: "image/png"},
		{ID: "c", Text: "city video", FileType: "video/mp4"},
	}}
	service := NewService(lister)
	service.Refresh(context.Background())

	service.SetCategory(model.CategoryVideo)
	service.SetSearchQuery("beach")

	visible := service.VisibleItems()
	if len(visible) != 1 || visible[0].ID != "a" {
		t.Errorf("Expected only the beach video, got %v", visible)
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService(&fakeLister{})

	updates := 0
	service.SetUpdateCallback(func() {
		updates++
	})

	service.SetCategory(model.CategoryVideo)
	service.SetSearchQuery("x")
	service.SetViewMode(ViewModeList)

	if updates != 3 {
		t.Errorf("Expected 3 update notifications, got %d", updates)
	}
}
