package ui

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"fyne.io/fyne/v2"
)

// ThumbnailCache fetches image bytes from the server once and hands them out
// as Fyne resources. Fetches run in the background; callbacks fire off the UI
// thread, so callers wrap their work in fyne.Do.
type ThumbnailCache struct {
	httpClient *http.Client

	mu        sync.Mutex
	resources map[string]fyne.Resource
	pending   map[string][]func(fyne.Resource)
}

// NewThumbnailCache creates a thumbnail cache backed by the given HTTP client
func NewThumbnailCache(httpClient *http.Client) *ThumbnailCache {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ThumbnailCache{
		httpClient: httpClient,
		resources:  make(map[string]fyne.Resource),
		pending:    make(map[string][]func(fyne.Resource)),
	}
}

// Load delivers the image at url to onLoaded, fetching it if needed. Cached
// images are delivered synchronously. Concurrent loads of the same id share
// one fetch. On fetch failure the callback is never invoked and the cell
// keeps its placeholder.
func (tc *ThumbnailCache) Load(id, url string, onLoaded func(fyne.Resource)) {
	tc.mu.Lock()
	if res, ok := tc.resources[id]; ok {
		tc.mu.Unlock()
		onLoaded(res)
		return
	}

	if _, inflight := tc.pending[id]; inflight {
		tc.pending[id] = append(tc.pending[id], onLoaded)
		tc.mu.Unlock()
		return
	}
	tc.pending[id] = []func(fyne.Resource){onLoaded}
	tc.mu.Unlock()

	go tc.fetch(id, url)
}

// fetch downloads the image and notifies all waiters
func (tc *ThumbnailCache) fetch(id, url string) {
	res, err := tc.download(id, url)

	tc.mu.Lock()
	waiters := tc.pending[id]
	delete(tc.pending, id)
	if err == nil {
		tc.resources[id] = res
	}
	tc.mu.Unlock()

	if err != nil {
		log.Printf("Thumbnail fetch failed for %s: %v", id, err)
		return
	}

	for _, waiter := range waiters {
		waiter(res)
	}
}

// download performs the HTTP GET and wraps the bytes as a static resource
func (tc *ThumbnailCache) download(id, url string) (fyne.Resource, error) {
	resp, err := tc.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, ThumbnailMaxBytes))
	if err != nil {
		return nil, err
	}

	return fyne.NewStaticResource(id, data), nil
}
