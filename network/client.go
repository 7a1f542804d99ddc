// Package network provides the shared HTTP client used for source documents and media downloads.
package network

import (
	"net/http"
	"time"

	"github.com/vidshelf/vidshelf/constant"
)

// Client is the singleton HTTP client shared across the application.
// It has no overall timeout so media downloads can stream; callers bound requests with their context.
// Every request it sends carries the application User-Agent unless one is already set.
var Client = &http.Client{
	Transport: &userAgentTransport{base: newTransport()},
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", constant.UserAgent)
	return t.base.RoundTrip(clone)
}
