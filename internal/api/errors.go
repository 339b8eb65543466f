package api

import (
	"encoding/json"
	"fmt"
)

// Error describes a non-2xx response from the remote store API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// newError builds an Error from a response status line and raw body. The
// message is enriched from a JSON error body when one parses: either a bare
// string, or an object carrying a "message" or "error" field. Otherwise the
// generic status-line message is kept.
func newError(statusCode int, status string, body []byte) *Error {
	e := &Error{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("api error: %s", status),
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return e
	}

	switch v := parsed.(type) {
	case string:
		if v != "" {
			e.Message = v
		}
	case map[string]any:
		if msg, ok := v["message"].(string); ok && msg != "" {
			e.Message = msg
		} else if msg, ok := v["error"].(string); ok && msg != "" {
			e.Message = msg
		}
	}
	return e
}
