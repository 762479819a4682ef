package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Source yields the raw bytes of one dataset document.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// NewSource picks an HTTP source for http(s) locations, an S3 source for s3:// locations
// and a file source otherwise. A malformed s3 location yields a source that fails on Open.
func NewSource(location string, timeout time.Duration) Source {
	location = strings.TrimSpace(location)
	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return NewHTTPSource(location, timeout)
	case strings.HasPrefix(lower, s3Scheme):
		src, err := NewS3Source(location, nil)
		if err != nil {
			return brokenSource{name: location, err: err}
		}
		return src
	}
	return FileSource{Path: location}
}

type brokenSource struct {
	name string
	err  error
}

func (s brokenSource) Name() string { return s.name }

func (s brokenSource) Open(context.Context) (io.ReadCloser, error) { return nil, s.err }

// NewSources builds one source per location, skipping blanks.
func NewSources(locations []string, timeout time.Duration) []Source {
	var sources []Source
	for _, loc := range locations {
		if strings.TrimSpace(loc) == "" {
			continue
		}
		sources = append(sources, NewSource(loc, timeout))
	}
	return sources
}

// FileSource reads a document from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", s.Path, err)
	}
	return f, nil
}

// HTTPSource fetches a document with a GET request.
type HTTPSource struct {
	URL        string
	httpClient *http.Client
}

// NewHTTPSource creates an HTTP source. A zero timeout means 90 seconds.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout == 0 {
		timeout = 90 * time.Second
	}
	return &HTTPSource{
		URL:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string { return s.URL }

func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("url", s.URL).Msg("Requesting dataset document")
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset %s: %w", s.URL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		switch resp.StatusCode {
		case http.StatusNotFound:
			return nil, fmt.Errorf("dataset %s not found (404)", s.URL)
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("access to dataset %s denied (%d)", s.URL, resp.StatusCode)
		default:
			return nil, fmt.Errorf("dataset server returned status %d for %s", resp.StatusCode, s.URL)
		}
	}
	return resp.Body, nil
}
