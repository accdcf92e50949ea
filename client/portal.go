package client

import (
	"context"
	"net/http"
)

// Per-entity data-layer calls. Each section of the dashboard refetches its
// full list after every mutation; nothing here patches state incrementally.

// =============================
// Capsules
// =============================

func (c *Client) Capsules(ctx context.Context) ([]Capsule, error) {
	out := []Capsule{}
	err := c.do(ctx, http.MethodGet, "/api/capsules", nil, &out)
	return out, err
}

func (c *Client) CreateCapsule(ctx context.Context, in CapsuleInput) (*Capsule, error) {
	var out Capsule
	if err := c.do(ctx, http.MethodPost, "/api/capsules", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCapsule(ctx context.Context, id string, in CapsuleInput) (*Capsule, error) {
	var out Capsule
	if err := c.do(ctx, http.MethodPut, "/api/capsules/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCapsule(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/capsules/"+id, nil, nil)
}

// =============================
// Categories
// =============================

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	out := []Category{}
	err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPut, "/api/categories/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil)
}

// =============================
// Industries
// =============================

func (c *Client) Industries(ctx context.Context) ([]Industry, error) {
	out := []Industry{}
	err := c.do(ctx, http.MethodGet, "/api/industries", nil, &out)
	return out, err
}

func (c *Client) CreateIndustry(ctx context.Context, in IndustryInput) (*Industry, error) {
	var out Industry
	if err := c.do(ctx, http.MethodPost, "/api/industries", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateIndustry(ctx context.Context, id string, in IndustryInput) (*Industry, error) {
	var out Industry
	if err := c.do(ctx, http.MethodPut, "/api/industries/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIndustry also deletes every demo under the industry (server-side
// cascade, not transactional).
func (c *Client) DeleteIndustry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/industries/"+id, nil, nil)
}

// =============================
// Demos
// =============================

func (c *Client) Demos(ctx context.Context) ([]Demo, error) {
	out := []Demo{}
	err := c.do(ctx, http.MethodGet, "/api/demos", nil, &out)
	return out, err
}

func (c *Client) DemosByIndustry(ctx context.Context, industryID string) ([]Demo, error) {
	out := []Demo{}
	err := c.do(ctx, http.MethodGet, "/api/demos/industry/"+industryID, nil, &out)
	return out, err
}

func (c *Client) CreateDemo(ctx context.Context, in DemoInput) (*Demo, error) {
	var out Demo
	if err := c.do(ctx, http.MethodPost, "/api/demos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDemo(ctx context.Context, id string, in DemoInput) (*Demo, error) {
	var out Demo
	if err := c.do(ctx, http.MethodPut, "/api/demos/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDemo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/demos/"+id, nil, nil)
}

// =============================
// Materials
// =============================

func (c *Client) Materials(ctx context.Context) ([]Material, error) {
	out := []Material{}
	err := c.do(ctx, http.MethodGet, "/api/materials", nil, &out)
	return out, err
}

func (c *Client) CreateMaterial(ctx context.Context, in MaterialInput) (*Material, error) {
	var out Material
	if err := c.do(ctx, http.MethodPost, "/api/materials", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMaterial(ctx context.Context, id string, in MaterialInput) (*Material, error) {
	var out Material
	if err := c.do(ctx, http.MethodPut, "/api/materials/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMaterial(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/materials/"+id, nil, nil)
}

// =============================
// Resources
// =============================

func (c *Client) Resources(ctx context.Context) ([]Resource, error) {
	out := []Resource{}
	err := c.do(ctx, http.MethodGet, "/api/resources", nil, &out)
	return out, err
}

func (c *Client) CreateResource(ctx context.Context, in ResourceInput) (*Resource, error) {
	var out Resource
	if err := c.do(ctx, http.MethodPost, "/api/resources", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateResource(ctx context.Context, id string, in ResourceInput) (*Resource, error) {
	var out Resource
	if err := c.do(ctx, http.MethodPut, "/api/resources/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteResource(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/resources/"+id, nil, nil)
}
