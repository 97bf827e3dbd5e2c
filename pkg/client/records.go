package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/http/handler/api"
	"github.com/pkg/errors"
)

type ListRecordsOptions struct {
	Query string
	Page  *int
	Limit *int
}

type ListRecordsOptionFunc func(opts *ListRecordsOptions)

func WithListRecordsQuery(query string) ListRecordsOptionFunc {
	return func(opts *ListRecordsOptions) {
		opts.Query = query
	}
}

func WithListRecordsPage(page int) ListRecordsOptionFunc {
	return func(opts *ListRecordsOptions) {
		opts.Page = &page
	}
}

func WithListRecordsLimit(limit int) ListRecordsOptionFunc {
	return func(opts *ListRecordsOptions) {
		opts.Limit = &limit
	}
}

func NewListRecordsOptions(funcs ...ListRecordsOptionFunc) *ListRecordsOptions {
	opts := &ListRecordsOptions{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// RecordsPage holds raw records, decoded by the caller according to the kind.
type RecordsPage = api.ListRecordsResponse[json.RawMessage]

func (c *Client) ListRecords(ctx context.Context, kind model.Kind, funcs ...ListRecordsOptionFunc) (*RecordsPage, error) {
	opts := NewListRecordsOptions(funcs...)

	query := url.Values{}
	if opts.Query != "" {
		query.Set("q", opts.Query)
	}
	if opts.Page != nil {
		query.Set("page", strconv.Itoa(*opts.Page))
	}
	if opts.Limit != nil {
		query.Set("limit", strconv.Itoa(*opts.Limit))
	}

	endpoint := &url.URL{
		Path:     "/records/" + string(kind),
		RawQuery: query.Encode(),
	}

	var page RecordsPage

	if err := c.jsonRequest(ctx, http.MethodGet, endpoint.String(), nil, &page); err != nil {
		return nil, errors.WithStack(err)
	}

	return &page, nil
}

func (c *Client) GetStats(ctx context.Context) (*api.GetStatsResponse, error) {
	var stats api.GetStatsResponse

	if err := c.jsonRequest(ctx, http.MethodGet, "/stats", nil, &stats); err != nil {
		return nil, errors.WithStack(err)
	}

	return &stats, nil
}
