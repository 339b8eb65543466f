// Package api implements the client for the remote store REST API.
//
// Every endpoint wrapper is built on a single request primitive that handles
// URL construction, JSON encoding, and error enrichment, so consumers only
// ever see typed results or an *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Client talks to the remote store. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *cache.Cache
}

// New returns a client for the API at baseURL. timeout bounds each request;
// cacheTTL controls how long the full product list is cached for client-side
// search.
func New(baseURL string, timeout, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cache.New(cacheTTL, 2*cacheTTL),
	}
}

// ListOptions narrows list endpoints. Zero values are omitted from the
// query string.
type ListOptions struct {
	Limit int
	Sort  string // "asc" or "desc"
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	return v
}

func (c *Client) buildURL(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// do issues a single request. body (when non-nil) is JSON-encoded; a 2xx
// response is decoded into out (when non-nil); any other status yields an
// *Error.
func (c *Client) do(ctx context.Context, method, path string, body any, params url.Values, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, params), reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newError(resp.StatusCode, resp.Status, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
