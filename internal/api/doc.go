package api

// Package api implements the HTTP client for the remote storage server. It
// covers the three server operations (list, upload, download URL) and
// translates HTTP/JSON responses into typed results and errors. No caching,
// retries, or timeouts are applied at this layer; failures propagate to the
// caller immediately.
