package ownership

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
)

// ErrMissingConfiguration signals that no ownership location was configured.
var ErrMissingConfiguration = errors.New("OWNERSHIP_URL is not set")

const (
	defaultFetchTimeout = 10 * time.Second
	maxErrorBodyBytes   = 512
)

// Source loads a fresh ownership document on each call.
type Source interface {
	Load(ctx context.Context) (Config, error)
}

// NewSource picks an HTTP or file source for location. An empty location yields a source
// whose Load always fails with ErrMissingConfiguration.
func NewSource(location string, client *http.Client) Source {
	location = strings.TrimSpace(location)
	if location == "" {
		return missingSource{}
	}
	if u, err := url.Parse(location); err == nil {
		switch u.Scheme {
		case "http", "https":
			if client == nil {
				client = &http.Client{Timeout: defaultFetchTimeout}
			}
			return &HTTPSource{url: location, client: client}
		case "file":
			return &FileSource{path: u.Path}
		}
	}
	return &FileSource{path: location}
}

type missingSource struct{}

func (missingSource) Load(context.Context) (Config, error) {
	return Config{}, ErrMissingConfiguration
}

// Configured reports whether src can produce documents at all.
func Configured(src Source) bool {
	_, missing := src.(missingSource)
	return src != nil && !missing
}

// HTTPSource fetches the document over HTTP.
type HTTPSource struct {
	url    string
	client *http.Client
}

// Load fetches and decodes the document. Non-2xx responses yield *providers.FetchError.
func (s *HTTPSource) Load(ctx context.Context) (Config, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Config{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return Config{}, fmt.Errorf("ownership: fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return Config{}, &providers.FetchError{
			StatusCode: resp.StatusCode,
			URL:        s.url,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return Decode(resp.Body)
}

// FileSource reads the document from disk.
type FileSource struct {
	path string
}

// Load reads and decodes the file.
func (s *FileSource) Load(ctx context.Context) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return Config{}, fmt.Errorf("ownership: open %s: %w", s.path, err)
	}
	defer f.Close()
	return Decode(f)
}
