package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when a provider is not configured or is short-circuited.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FetchError captures a non-success HTTP response from an upstream source.
type FetchError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *FetchError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("fetch %s: unexpected status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
