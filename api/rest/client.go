package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/collabctl/collabctl/api/header"
	"github.com/collabctl/collabctl/errs"
	"github.com/collabctl/collabctl/settings"
	"github.com/collabctl/collabctl/version"
)

const (
	mediaType  = "application/vnd.github+json"
	apiVersion = "2022-11-28"
)

// Client talks to the GitHub REST API. It owns authentication, serialization,
// retries and the mapping of failed responses to *HTTPError.
type Client struct {
	baseURL *url.URL
	token   string
	client  *retryablehttp.Client
	log     *logrus.Entry
}

// NewFromConfig returns a client configured from the CLI settings. The config's HTTPClient
// is used as is when set.
func NewFromConfig(host string, config *settings.Config) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = settings.DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return newClient(host, config.RestEndpoint, config.Token, httpClient, config.RetryMax)
}

func newClient(host, endpoint, token string, httpClient *http.Client, retryMax int) *Client {
	// Ensure endpoint ends with a slash
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)
	log := logrus.NewEntry(discard)

	retryableClient := retryablehttp.NewClient()
	retryableClient.HTTPClient = httpClient
	retryableClient.RetryMax = retryMax
	retryableClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryableClient.Logger = NewLeveledLogger(log)

	u, _ := url.Parse(host)
	return &Client{
		baseURL: u.ResolveReference(&url.URL{Path: endpoint}),
		token:   token,
		client:  retryableClient,
		log:     log,
	}
}

// SetLogger routes the client's diagnostics, including retry attempts, to log.
func (c *Client) SetLogger(log *logrus.Entry) {
	c.log = log
	c.client.Logger = NewLeveledLogger(log)
}

func (c *Client) NewRequest(ctx context.Context, method string, u *url.URL, payload interface{}) (req *http.Request, err error) {
	var r io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		r = buf
		err = json.NewEncoder(buf).Encode(payload)
		if err != nil {
			return nil, errors.Wrap(err, "error marshaling request data to JSON")
		}
	}

	req, err = http.NewRequestWithContext(ctx, method, c.baseURL.ResolveReference(u).String(), r)
	if err != nil {
		return nil, err
	}

	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	req.Header.Set("Accept", mediaType)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", version.UserAgent())
	commandStr := header.GetCommandStr()
	if commandStr != "" {
		req.Header.Set(header.CommandHeader, commandStr)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// DoRequest sends req and decodes a JSON response body into resp when resp is not nil.
// Any status of 300 or above is returned as *HTTPError.
func (c *Client) DoRequest(req *http.Request, resp interface{}) (statusCode int, err error) {
	statusCode, _, err = c.do(req, resp)
	return statusCode, err
}

func (c *Client) do(req *http.Request, resp interface{}) (int, http.Header, error) {
	retryableReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "error making request")
	}

	c.log.Debugf("%s %s", req.Method, req.URL.String())

	httpResp, err := c.client.Do(retryableReq)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "error during request %s %s", req.Method, req.URL.Path)
	}
	defer httpResp.Body.Close()

	c.log.WithField("status", httpResp.StatusCode).Debugf("%s %s done", req.Method, req.URL.Path)

	if httpResp.StatusCode >= 300 {
		return httpResp.StatusCode, httpResp.Header, newHTTPError(httpResp)
	}

	if resp != nil && httpResp.StatusCode != http.StatusNoContent {
		if !strings.Contains(httpResp.Header.Get("Content-Type"), "json") {
			return httpResp.StatusCode, httpResp.Header, errors.New("wrong content type received")
		}

		err = json.NewDecoder(httpResp.Body).Decode(resp)
		if err != nil {
			return httpResp.StatusCode, httpResp.Header, errors.Wrap(err, "error decoding response body")
		}
	}
	return httpResp.StatusCode, httpResp.Header, nil
}

func newHTTPError(httpResp *http.Response) *HTTPError {
	httpError := struct {
		Message          string `json:"message"`
		DocumentationURL string `json:"documentation_url"`
	}{}
	body, err := io.ReadAll(httpResp.Body)
	if err == nil && len(bytes.TrimSpace(body)) > 0 {
		// a body that is not JSON leaves the message empty
		_ = json.Unmarshal(body, &httpError)
	}
	return &HTTPError{
		Code:             httpResp.StatusCode,
		Message:          httpError.Message,
		DocumentationURL: httpError.DocumentationURL,
	}
}

// HTTPError is the single error kind produced for a response the API did not accept.
type HTTPError struct {
	Code             int
	Message          string
	DocumentationURL string
}

func (e *HTTPError) Error() string {
	if e.Code == 0 {
		e.Code = http.StatusInternalServerError
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("response %d (%s)", e.Code, http.StatusText(e.Code))
}

// Is lets callers match common statuses with errors.Is without a dedicated type per status.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case errs.ErrNotFound:
		return e.Code == http.StatusNotFound
	case errs.ErrAuthRequired:
		return e.Code == http.StatusUnauthorized
	}
	return false
}

// IsNotFound reports whether err is an API response with status 404.
func IsNotFound(err error) bool {
	return errors.Is(err, errs.ErrNotFound)
}
