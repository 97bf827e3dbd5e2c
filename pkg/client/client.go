package client

import (
	"net/http"
	"net/url"
)

// Client calls the vitrine JSON API. The session cookie issued by the
// server is kept, so successive calls share the same visitor workspace.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
	}
}
