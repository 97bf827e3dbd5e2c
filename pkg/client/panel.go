package client

import (
	"context"
	"net/http"

	"github.com/bornholm/vitrine/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) ComputePanelOrigin(ctx context.Context, req api.ComputePanelOriginRequest) (*api.ComputePanelOriginResponse, error) {
	var origin api.ComputePanelOriginResponse

	if err := c.jsonRequest(ctx, http.MethodPost, "/panel/origin", req, &origin); err != nil {
		return nil, errors.WithStack(err)
	}

	return &origin, nil
}
