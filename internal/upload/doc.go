package upload

// Package upload owns the transient upload-in-progress state. It sends a
// selected file with its effective description to the server and triggers a
// gallery reconcile after a successful upload. Nothing is retried; a failed
// upload surfaces to the user and the list stays as it was.
