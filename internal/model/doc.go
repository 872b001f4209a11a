package model

// Package model defines domain data structures used across the app: remote
// file descriptors, media categories, and the MIME classifier. Structures are
// designed for direct binding in the UI and JSON decoding from the server.
