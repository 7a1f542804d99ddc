package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vidshelf/vidshelf/filesystem"
)

// FileFetcher reads documents from the active filesystem.
type FileFetcher struct{}

func (FileFetcher) Fetch(_ context.Context, location string) (io.ReadCloser, error) {
	return filesystem.API().Open(strings.TrimPrefix(location, "file://"))
}

// HTTPFetcher downloads documents over HTTP.
type HTTPFetcher struct {
	Client *http.Client
}

func (f *HTTPFetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		_ = res.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	return res.Body, nil
}
