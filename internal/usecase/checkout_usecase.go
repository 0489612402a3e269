package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"payetonkawa/internal/cart"
	"payetonkawa/internal/domain/model"
	"payetonkawa/internal/session"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// OrderAPI はチェックアウトが必要とする注文サービス操作だけの約束。
type OrderAPI interface {
	Create(ctx context.Context, in model.OrderCreate) (model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
}

// CheckoutUsecase はカートの中身から注文を起こす。
type CheckoutUsecase struct {
	sessions *session.Store
	carts    *cart.Store
	orders   OrderAPI
}

func NewCheckoutUsecase(sessions *session.Store, carts *cart.Store, orders OrderAPI) *CheckoutUsecase {
	return &CheckoutUsecase{
		sessions: sessions,
		carts:    carts,
		orders:   orders,
	}
}

// PlaceOrder はログイン中の顧客でカート全行の注文を作り、成功したら
// カートを空にする。注文サービスのエラーはそのまま返す（カートは残る）。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context) (model.Order, error) {
	user, ok := u.sessions.CurrentUser(ctx)
	if !ok {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines := u.carts.Items(ctx)
	if len(lines) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "empty cart")
	}

	in := model.OrderCreate{
		CustomerID: user.ID,
		Lines:      make([]model.OrderLineCreate, 0, len(lines)),
	}
	for _, l := range lines {
		in.Lines = append(in.Lines, model.OrderLineCreate{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
		})
	}

	order, err := u.orders.Create(ctx, in)
	if err != nil {
		return model.Order{}, err
	}

	if err := u.carts.Clear(ctx); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// MyOrders はログイン中の顧客の注文一覧。
func (u *CheckoutUsecase) MyOrders(ctx context.Context) ([]model.Order, error) {
	user, ok := u.sessions.CurrentUser(ctx)
	if !ok {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.orders.ListByCustomer(ctx, user.ID)
}
