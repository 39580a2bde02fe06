package department

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"hr-admin/internal/shared/upstream"

	"golang.org/x/sync/singleflight"
)

const endpoint = "/departments"

type Client interface {
	GetAll(ctx context.Context) ([]Department, error)
	GetPaged(ctx context.Context, page, pageSize int) (PagedDepartments, error)
	GetByID(ctx context.Context, id int64) (Department, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (Department, error)
	Update(ctx context.Context, id int64, req UpdateDepartmentRequest) error
	Delete(ctx context.Context, id int64) error
}

type client struct {
	api *upstream.Client

	// GetAll dipakai dropdown form employee; kalau beberapa request
	// merender form bersamaan cukup satu call upstream yang jalan.
	group singleflight.Group
}

func NewClient(api *upstream.Client) Client {
	return &client{api: api}
}

func (c *client) GetAll(ctx context.Context) ([]Department, error) {
	v, err, _ := c.group.Do("departments:all", func() (any, error) {
		var out []Department
		if err := c.api.GetJSON(ctx, endpoint, nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Department), nil
}

func (c *client) GetPaged(ctx context.Context, page, pageSize int) (PagedDepartments, error) {
	query := url.Values{
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}
	var out PagedDepartments
	if err := c.api.GetJSON(ctx, endpoint+"/paged", query, &out); err != nil {
		return PagedDepartments{}, err
	}
	return out, nil
}

func (c *client) GetByID(ctx context.Context, id int64) (Department, error) {
	var out Department
	if err := c.api.GetJSON(ctx, fmt.Sprintf("%s/%d", endpoint, id), nil, &out); err != nil {
		return Department{}, err
	}
	return out, nil
}

func (c *client) Create(ctx context.Context, req CreateDepartmentRequest) (Department, error) {
	var out Department
	if err := c.api.PostJSON(ctx, endpoint, req, &out); err != nil {
		return Department{}, err
	}
	return out, nil
}

func (c *client) Update(ctx context.Context, id int64, req UpdateDepartmentRequest) error {
	return c.api.PutJSON(ctx, fmt.Sprintf("%s/%d", endpoint, id), req)
}

func (c *client) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/%d", endpoint, id))
}
