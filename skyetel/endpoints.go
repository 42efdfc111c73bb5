package skyetel

import (
	"context"
)

// GetEndpoints retrieves a page of SIP endpoints.
func (c *Client) GetEndpoints(ctx context.Context, opts ListOptions) ([]Endpoint, error) {
	body, err := c.get(ctx, c.endpoint(pathEndpoints)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[Endpoint](body, "endpoint", "id")
}

// CreateEndpoint registers a new SIP endpoint. The request is
// form-encoded, matching the endpoint's documented content type.
func (c *Client) CreateEndpoint(ctx context.Context, req EndpointCreate) (*Endpoint, error) {
	form, err := req.values()
	if err != nil {
		return nil, err
	}

	body, err := c.postForm(ctx, c.endpoint(pathEndpoints), form)
	if err != nil {
		return nil, err
	}
	return decodeObject[Endpoint](body, "endpoint", "id")
}

// UpdateEndpoint applies a sparse update to a SIP endpoint. Only fields
// set on the update are sent.
func (c *Client) UpdateEndpoint(ctx context.Context, endpointID int64, upd EndpointUpdate) (*Endpoint, error) {
	form, err := upd.values()
	if err != nil {
		return nil, err
	}

	body, err := c.patchForm(ctx, c.endpoint(pathEndpoint, endpointID), form)
	if err != nil {
		return nil, err
	}
	return decodeObject[Endpoint](body, "endpoint", "id")
}
