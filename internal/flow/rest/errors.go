package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StatusError is returned when the access node answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("access api status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the access node.
func IsNotFound(err error) bool {
	var s *StatusError
	return errors.As(err, &s) && s.StatusCode == http.StatusNotFound
}

func newStatusError(status int, body []byte) *StatusError {
	var payload errorJSON
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &StatusError{StatusCode: status, Message: msg}
}
