package youtube

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAPIKey is returned before any request is made when no key is configured
var ErrMissingAPIKey = errors.New("youtube: no API key configured (set YTGRIP_API_KEY or api_key in config)")

// NetworkError covers transport failures, non-2xx responses and cancelled
// rate-limit waits
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("youtube %s: %d %s: %v", e.Op, e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	}
	return fmt.Sprintf("youtube %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError is returned when a response body is not the expected JSON
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("youtube %s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
