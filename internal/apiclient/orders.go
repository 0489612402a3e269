package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"payetonkawa/internal/domain/model"
)

// Orders は api-commandes（注文サービス）のクライアント。
type Orders struct {
	c *Client
}

func NewOrders(c *Client) *Orders {
	return &Orders{c: c}
}

func (s *Orders) List(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	if err := s.c.doJSON(ctx, http.MethodGet, "/orders/", "orders", "list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Orders) Get(ctx context.Context, id int64) (model.Order, error) {
	var out model.Order
	if err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), "orders", "get", nil, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// ListByCustomer は顧客ID指定の一覧（GET /orders/client/{id}）。
func (s *Orders) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	var out []model.Order
	if err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/client/%d", customerID), "orders", "list_by_customer", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Orders) Create(ctx context.Context, in model.OrderCreate) (model.Order, error) {
	var out model.Order
	if err := s.c.doJSON(ctx, http.MethodPost, "/orders/", "orders", "create", in, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (s *Orders) Update(ctx context.Context, id int64, in model.OrderUpdate) (model.Order, error) {
	var out model.Order
	if err := s.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), "orders", "update", in, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (s *Orders) Delete(ctx context.Context, id int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), "orders", "delete", nil, nil)
}
