package rest

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
	"github.com/tomnomnom/linkheader"

	"github.com/collabctl/collabctl/errs"
)

// ListOptions controls how list endpoints are paged. Zero values leave the
// choice to the API (first page, default page size, every page).
type ListOptions struct {
	// StartPage is the first page requested, starting at 1.
	StartPage int `url:"page,omitempty"`
	// PageSize is the number of items per page.
	PageSize int `url:"per_page,omitempty"`
	// PageCount caps how many pages are read.
	PageCount int `url:"-"`
}

// Validate rejects negative values.
func (o ListOptions) Validate() error {
	switch {
	case o.StartPage < 0:
		return errs.InvalidArgumentf("StartPage", "start page must not be negative, got %d", o.StartPage)
	case o.PageSize < 0:
		return errs.InvalidArgumentf("PageSize", "page size must not be negative, got %d", o.PageSize)
	case o.PageCount < 0:
		return errs.InvalidArgumentf("PageCount", "page count must not be negative, got %d", o.PageCount)
	}
	return nil
}

// addOptions returns a copy of u with the paging parameters merged into its query.
func (o ListOptions) addOptions(u *url.URL) (*url.URL, error) {
	vs, err := query.Values(o)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding list options")
	}

	out := *u
	q := out.Query()
	for k, v := range vs {
		q[k] = v
	}
	out.RawQuery = q.Encode()
	return &out, nil
}

// GetAllPages requests u with the given options and follows rel="next" links until the
// last page or until opts.PageCount pages were read. Items are returned in the order received.
func GetAllPages[T any](ctx context.Context, c *Client, u *url.URL, opts ListOptions) ([]T, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pageURL, err := opts.addOptions(u)
	if err != nil {
		return nil, err
	}

	all := make([]T, 0)
	for pages := 0; pageURL != nil; pages++ {
		if opts.PageCount > 0 && pages >= opts.PageCount {
			break
		}

		req, err := c.NewRequest(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, err
		}

		var page []T
		_, respHeader, err := c.do(req, &page)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)

		pageURL, err = nextPage(respHeader)
		if err != nil {
			return nil, err
		}
		if pageURL != nil && !c.sameOrigin(pageURL) {
			return nil, errors.Errorf("refusing to follow next page link to %s://%s, requests are only sent to %s://%s",
				pageURL.Scheme, pageURL.Host, c.baseURL.Scheme, c.baseURL.Host)
		}
	}
	return all, nil
}

// sameOrigin reports whether u is relative or points at the client's own scheme and host.
// The token is attached to every request, so links elsewhere are never followed.
func (c *Client) sameOrigin(u *url.URL) bool {
	if !u.IsAbs() && u.Host == "" {
		return true
	}
	return strings.EqualFold(u.Scheme, c.baseURL.Scheme) && strings.EqualFold(u.Host, c.baseURL.Host)
}

// nextPage extracts the rel="next" target from the Link headers, or nil on the last page.
// The format is `<https://api.github.com/...?page=2>; rel="next", <...>; rel="last"`.
func nextPage(h http.Header) (*url.URL, error) {
	links := linkheader.ParseMultiple(h.Values("Link")).FilterByRel("next")
	if len(links) == 0 {
		return nil, nil
	}

	next, err := url.Parse(links[0].URL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid next page link %q", links[0].URL)
	}
	return next, nil
}
