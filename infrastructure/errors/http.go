// Package errors parses error responses from upstream HTTP APIs.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// MinErrorStatusCode is the lowest status treated as an error.
	MinErrorStatusCode = 400

	maxErrorBodyBytes = 64 << 10
)

// HTTPError is a non-2xx/3xx response from an upstream API.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
	// Type is the provider's error type or code, when it sends one.
	Type    string
	Message string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error (%s): %s", e.Status, e.Message)
	}
	return "HTTP error: " + e.Status
}

// ParseHTTPError turns an error response into an *HTTPError. It returns nil
// for status codes below 400. The body is read but not closed.
//
// Recognised bodies:
//
//	{"error": "text"} / {"message": "text"}
//	{"error": {"message": "text", "type": "insufficient_quota"}}
//	{"errors": [{"title": "...", "detail": "..."}]}
func ParseHTTPError(resp *http.Response) error {
	if resp.StatusCode < MinErrorStatusCode {
		return nil
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    fmt.Sprintf("failed to read error response body: %v", err),
		}
	}

	bodyStr := strings.TrimSpace(string(bodyBytes))
	httpErr := &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       bodyStr,
		Message:    bodyStr,
	}

	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
		Errors  []struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	if json.Unmarshal(bodyBytes, &envelope) != nil {
		return httpErr
	}

	switch {
	case len(envelope.Error) > 0:
		parseErrorField(envelope.Error, httpErr)
	case envelope.Message != "":
		httpErr.Message = envelope.Message
	case len(envelope.Errors) > 0:
		details := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			if e.Detail != "" {
				details[i] = e.Title + ": " + e.Detail
			} else {
				details[i] = e.Title
			}
		}
		httpErr.Message = strings.Join(details, "; ")
	}

	return httpErr
}

func parseErrorField(raw json.RawMessage, httpErr *HTTPError) {
	var text string
	if json.Unmarshal(raw, &text) == nil {
		if text != "" {
			httpErr.Message = text
		}
		return
	}

	var obj struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	}
	if json.Unmarshal(raw, &obj) != nil {
		return
	}
	if obj.Message != "" {
		httpErr.Message = obj.Message
	}
	httpErr.Type = obj.Type
	if httpErr.Type == "" && obj.Code != nil {
		httpErr.Type = fmt.Sprint(obj.Code)
	}
}

// GetHTTPStatusCode returns the status code of the first *HTTPError in err's chain.
func GetHTTPStatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}
