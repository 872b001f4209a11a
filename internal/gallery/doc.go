package gallery

// Package gallery owns the client-side view state of the stored file list:
// the fetched items, the active category filter, the free-text search filter,
// and the grid/list view mode. It recomputes the visible subset on demand and
// reports state changes to the UI through a callback.
