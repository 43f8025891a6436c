package providers

import (
	"errors"
	"fmt"
)

// NetworkError captures transport failures and non-success statuses from
// upstream endpoints. A NetworkError aborts the rest of the cycle; nothing
// in this program retries.
type NetworkError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s: request failed", e.Provider)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError captures payloads that do not parse into the expected shape.
type DecodeError struct {
	Provider string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed payload: %v", e.Provider, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr, true
	}
	return nil, false
}
