package mock

import (
	"io"
	"net/http"
	"strings"
)

type transport struct {
	f func(*http.Request) (*http.Response, error)
}

func (t *transport) RoundTrip(r *http.Request) (*http.Response, error) {
	return t.f(r)
}

// NewHTTPClient returns a client whose every round trip is answered by f.
func NewHTTPClient(f func(*http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &transport{f: f},
	}
}

// NewFailingHTTPClient returns a client whose round trips all fail with err,
// the way a dropped connection or a timeout would.
func NewFailingHTTPClient(err error) *http.Client {
	return NewHTTPClient(func(*http.Request) (*http.Response, error) {
		return nil, err
	})
}

// NewHTTPResponse builds a JSON response with the given status and body.
func NewHTTPResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Header:     http.Header{"Content-Type": {"application/json; charset=utf-8"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
