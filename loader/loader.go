// Package loader fetches the source documents of a session and merges their records.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/log"
	"github.com/vidshelf/vidshelf/network"
	"github.com/vidshelf/vidshelf/video"
)

// ErrNoRecords is returned when every source failed or was empty.
var ErrNoRecords = errors.New("no videos could be loaded from any source")

// Fetcher opens the document at location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (io.ReadCloser, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, location string) (io.ReadCloser, error)

func (f FetcherFunc) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	return f(ctx, location)
}

// Loader fetches sources concurrently and concatenates their records in the order the sources were given.
type Loader struct {
	fetchers map[string]Fetcher
	timeout  time.Duration
}

// Option configures a Loader.
type Option func(*Loader)

// WithFetcher serves locations with the given URL scheme by f.
func WithFetcher(scheme string, f Fetcher) Option {
	return func(l *Loader) {
		l.fetchers[strings.ToLower(scheme)] = f
	}
}

// WithTimeout bounds each source fetch. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// New creates a loader that understands local paths, file://, http(s):// and s3:// locations.
func New(opts ...Option) *Loader {
	web := &HTTPFetcher{Client: network.Client}
	local := &FileFetcher{}

	l := &Loader{
		fetchers: map[string]Fetcher{
			"":      local,
			"file":  local,
			"http":  web,
			"https": web,
			"s3": NewS3Fetcher(S3Config{
				Region:       viper.GetString(key.S3Region),
				Profile:      viper.GetString(key.S3Profile),
				UsePathStyle: viper.GetBool(key.S3PathStyle),
			}),
		},
		timeout: time.Duration(viper.GetInt(key.SourcesTimeout)) * time.Second,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load fetches every location concurrently and returns their raw records concatenated in location order.
// A source that fails to fetch or parse is logged and contributes no records.
// ErrNoRecords is returned only if all sources together yield nothing.
func (l *Loader) Load(ctx context.Context, locations []string) ([]video.Raw, error) {
	results := make([][]video.Raw, len(locations))

	var wg sync.WaitGroup
	for i, location := range locations {
		wg.Add(1)
		go func() {
			defer wg.Done()

			raws, err := l.loadOne(ctx, location)
			if err != nil {
				log.With(log.Fields{"source": location}).WithError(err).Warn("source failed, skipping it")
				return
			}

			log.With(log.Fields{"source": location, "records": len(raws)}).Info("source loaded")
			results[i] = raws
		}()
	}
	wg.Wait()

	var merged []video.Raw
	for _, raws := range results {
		merged = append(merged, raws...)
	}

	if len(merged) == 0 {
		return nil, ErrNoRecords
	}

	return merged, nil
}

func (l *Loader) loadOne(ctx context.Context, location string) ([]video.Raw, error) {
	fetcher, err := l.fetcherFor(location)
	if err != nil {
		return nil, err
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	body, err := fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	defer body.Close()

	return video.Decode(body)
}

// Open streams the resource at location through the fetcher registered for its scheme.
// The caller must close the returned body.
func (l *Loader) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	fetcher, err := l.fetcherFor(location)
	if err != nil {
		return nil, err
	}
	return fetcher.Fetch(ctx, location)
}

func (l *Loader) fetcherFor(location string) (Fetcher, error) {
	scheme := schemeOf(location)
	fetcher, ok := l.fetchers[scheme]
	if !ok {
		return nil, fmt.Errorf("unsupported source scheme %q", scheme)
	}
	return fetcher, nil
}

// schemeOf returns the lower-cased URL scheme of location, empty for plain paths.
// Single letter schemes are Windows drive letters.
func schemeOf(location string) string {
	parsed, err := url.Parse(location)
	if err != nil || len(parsed.Scheme) <= 1 {
		return ""
	}
	return strings.ToLower(parsed.Scheme)
}
