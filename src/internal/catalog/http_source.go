package catalog

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultHTTPTimeout is the default timeout for fetching a remote catalog.
const DefaultHTTPTimeout = 30 * time.Second

// IsRemote reports whether a catalog location is an http(s) URL rather than
// a file path.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "https://") || strings.HasPrefix(location, "http://")
}

// HTTPSource fetches a catalog file from a URL, for example a team-wide
// clideps.yml published alongside other shared tooling.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates a Source that fetches the catalog at url.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout: DefaultHTTPTimeout,
		},
	}
}

// URL returns the location the source fetches.
func (s *HTTPSource) URL() string {
	return s.url
}

// Fetch downloads the raw catalog file.
func (s *HTTPSource) Fetch() ([]byte, error) {
	resp, err := s.httpClient.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &ErrCatalogNotFound{Path: s.url}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch catalog %s: HTTP %d", s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	return data, nil
}

// Load fetches and parses the catalog.
func (s *HTTPSource) Load() (*File, error) {
	data, err := s.Fetch()
	if err != nil {
		return nil, err
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.url, err)
	}
	return f, nil
}
