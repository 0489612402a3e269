package handler

import (
	"net/http"

	"payetonkawa/internal/apiclient"
	"payetonkawa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkout と /orders のHTTP
type OrderHandler struct {
	stores *Stores
	orders *apiclient.Orders
}

// DI
func NewOrderHandler(stores *Stores, orders *apiclient.Orders) *OrderHandler {
	return &OrderHandler{stores: stores, orders: orders}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.checkout)
	e.GET("/orders", h.myOrders)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	uc := usecase.NewCheckoutUsecase(h.stores.Session(c), h.stores.Cart(c), h.orders)

	out, err := uc.PlaceOrder(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) myOrders(c echo.Context) error {
	uc := usecase.NewCheckoutUsecase(h.stores.Session(c), h.stores.Cart(c), h.orders)

	out, err := uc.MyOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
