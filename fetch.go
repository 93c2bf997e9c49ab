package barbell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
)

// ErrNoURL is reported for competitions without a results URL.
var ErrNoURL = errors.New("competition has no url")

// Fetcher retrieves the HTML of a results page. Implementations decide how
// URLs are resolved; the caller closes the returned body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (io.ReadCloser, error)

// Fetch calls f(ctx, url).
func (f FetcherFunc) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	return f(ctx, url)
}

// FileFetcher reads pages from the local file system. It accepts plain paths
// and file:// URLs. Relative paths are resolved against Dir.
type FileFetcher struct {
	Dir string
}

// Fetch opens the file named by rawURL.
func (f FileFetcher) Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && len(u.Scheme) > 1 {
		if u.Scheme != "file" {
			return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
		}
		path = u.Path
	}
	if !filepath.IsAbs(path) && f.Dir != "" {
		path = filepath.Join(f.Dir, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	return file, nil
}
