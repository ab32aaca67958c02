package domain

import (
	"errors"
	"fmt"
	"strings"
)

// RequestError is the single error kind the gateway surfaces for failed
// calls. Message carries the server's error body when one was present,
// otherwise a fixed per-operation fallback. Status is zero for transport
// failures that never produced a response.
type RequestError struct {
	Op      string
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// MalformedResponseError marks a 2xx response whose body failed shape
// validation. Kept distinct from RequestError so callers never mistake a
// broken contract for a backend rejection.
type MalformedResponseError struct {
	Op     string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Op, e.Reason)
}

// IsAnalysisUnavailable reports whether err is the backend's known
// partial-success mode on report submission: the report was stored but
// the image-analysis subsystem was down, so classification is pending.
// Callers treat the report as accepted.
func IsAnalysisUnavailable(err error) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	msg := strings.ToLower(reqErr.Message)
	return strings.Contains(msg, "image analysis") || strings.Contains(msg, "analisis gambar")
}

// UserMessage renders err as the text a chat user should see.
func UserMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		return "respons server tidak valid"
	}
	return err.Error()
}
