package employee

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"hr-admin/internal/shared/upstream"
)

const endpoint = "/employees"

type Client interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetPaged(ctx context.Context, page, pageSize int) (PagedEmployees, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int64) error
}

type client struct {
	api *upstream.Client
}

func NewClient(api *upstream.Client) Client {
	return &client{api: api}
}

func (c *client) GetAll(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.api.GetJSON(ctx, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetPaged(ctx context.Context, page, pageSize int) (PagedEmployees, error) {
	query := url.Values{
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}
	var out PagedEmployees
	if err := c.api.GetJSON(ctx, endpoint+"/paged", query, &out); err != nil {
		return PagedEmployees{}, err
	}
	return out, nil
}

func (c *client) GetByID(ctx context.Context, id int64) (Employee, error) {
	var out Employee
	if err := c.api.GetJSON(ctx, fmt.Sprintf("%s/%d", endpoint, id), nil, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (c *client) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	var out Employee
	if err := c.api.PostJSON(ctx, endpoint, req, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (c *client) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error {
	return c.api.PutJSON(ctx, fmt.Sprintf("%s/%d", endpoint, id), req)
}

func (c *client) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/%d", endpoint, id))
}
