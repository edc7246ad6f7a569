package apiclient

import (
	"context"
	"fmt"
)

// ListBarberosResumen returns the public barber summary cards: each
// barber with their featured image and item count.
func (c *Client) ListBarberosResumen(ctx context.Context) ([]BarberoResumen, error) {
	var resp barberoResumenResponse
	if _, err := c.Get(ctx, "/galeria/public/barberos", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetBarberoGaleria returns one barber's public gallery, optionally
// filtered by media type.
func (c *Client) GetBarberoGaleria(ctx context.Context, barberoID string, filter GalleryFilter) (*BarberoGaleria, error) {
	var resp barberoGaleriaResponse
	path := queryPath(fmt.Sprintf("/galeria/public/barbero/%s", barberoID), filter.query())
	if _, err := c.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
