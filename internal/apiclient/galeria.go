package apiclient

import (
	"context"
	"fmt"
	"net/url"
)

// GalleryFilter narrows gallery listings by media type. The zero value
// means no filtering.
type GalleryFilter struct {
	Tipo string // "imagen" or "video"
}

func (f GalleryFilter) query() url.Values {
	q := url.Values{}
	if f.Tipo != "" {
		q.Set("tipo", f.Tipo)
	}
	return q
}

// ListGaleria returns the authenticated management view of the gallery.
func (c *Client) ListGaleria(ctx context.Context, filter GalleryFilter) ([]GalleryItem, error) {
	var resp galleryListResponse
	if _, err := c.Get(ctx, queryPath("/galeria", filter.query()), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListGaleriaPublic returns the unauthenticated client-facing gallery.
func (c *Client) ListGaleriaPublic(ctx context.Context, filter GalleryFilter) ([]GalleryItem, error) {
	var resp galleryListResponse
	if _, err := c.Get(ctx, queryPath("/galeria/public", filter.query()), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateGaleria creates a gallery item.
func (c *Client) CreateGaleria(ctx context.Context, req GalleryItemRequest) (*GalleryItem, error) {
	var resp galleryItemResponse
	if _, err := c.Post(ctx, "/galeria", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateGaleria replaces a gallery item.
func (c *Client) UpdateGaleria(ctx context.Context, id string, req GalleryItemRequest) (*GalleryItem, error) {
	var resp galleryItemResponse
	if _, err := c.Put(ctx, fmt.Sprintf("/galeria/%s", id), req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DeleteGaleria deletes a gallery item.
func (c *Client) DeleteGaleria(ctx context.Context, id string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/galeria/%s", id), nil)
	return err
}

// ToggleActivo flips only the active flag of a gallery item. No other
// field travels in the request.
func (c *Client) ToggleActivo(ctx context.Context, id string) error {
	_, err := c.Patch(ctx, fmt.Sprintf("/galeria/%s/toggle-activo", id), struct{}{}, nil)
	return err
}

// ToggleDestacado flips only the featured flag of a gallery item.
func (c *Client) ToggleDestacado(ctx context.Context, id string) error {
	_, err := c.Patch(ctx, fmt.Sprintf("/galeria/%s/toggle-destacado", id), struct{}{}, nil)
	return err
}
