package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"payetonkawa/internal/domain/model"
)

// Customers は api-clients（顧客サービス）のクライアント。
type Customers struct {
	c *Client
}

func NewCustomers(c *Client) *Customers {
	return &Customers{c: c}
}

func (s *Customers) List(ctx context.Context) ([]model.Customer, error) {
	var out []model.Customer
	if err := s.c.doJSON(ctx, http.MethodGet, "/customers/", "customers", "list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Customers) Get(ctx context.Context, id int64) (model.Customer, error) {
	var out model.Customer
	if err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), "customers", "get", nil, &out); err != nil {
		return model.Customer{}, err
	}
	return out, nil
}

func (s *Customers) Create(ctx context.Context, in model.CustomerCreate) (model.Customer, error) {
	var out model.Customer
	if err := s.c.doJSON(ctx, http.MethodPost, "/customers/", "customers", "create", in, &out); err != nil {
		return model.Customer{}, err
	}
	return out, nil
}

func (s *Customers) Delete(ctx context.Context, id int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), "customers", "delete", nil, nil)
}
