package api

import "fmt"

// StatusError reports a non-success HTTP status from the server.
type StatusError struct {
	Op     string // "list" or "upload"
	Status int    // HTTP status code
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: server returned %d", e.Op, e.Status)
}

// ProtocolError reports a well-formed HTTP response whose envelope is
// malformed: a non-200 envelope code or a data payload of the wrong shape.
type ProtocolError struct {
	Code    int    // envelope code, 0 when undecodable
	Message string // server message when present
}

func (e *ProtocolError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid server response (code %d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("invalid server response (code %d)", e.Code)
}
