package handler

import (
	"net/http"
	"strconv"

	"payetonkawa/internal/apiclient"
	"payetonkawa/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	stores   *Stores
	products *apiclient.Products
}

// DI
func NewCartHandler(stores *Stores, products *apiclient.Products) *CartHandler {
	return &CartHandler{stores: stores, products: products}
}

type AddCartRequest struct {
	ProductID int64 `json:"produit_id"`
	Quantity  int64 `json:"quantite"`
}

type UpdateCartLineRequest struct {
	Quantity int64 `json:"quantite"`
}

// カートの返却形（明細＋集計）。
type CartResponse struct {
	Items []model.CartLine `json:"items"`
	Count int64            `json:"count"`
	Total float64          `json:"total"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("", h.addToCart)
	g.PATCH("/:id", h.patchLine)
	g.DELETE("/:id", h.deleteLine)
	g.DELETE("", h.clear)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.response(c))
}

// addToCart は商品サービスから名前・価格を引いて明細を作る。
// カート自体はネットワークに触れないので、触れるのはここだけ。
func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid produit_id"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := h.products.Get(c.Request().Context(), req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	line := model.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	}
	if err := h.stores.Cart(c).Add(c.Request().Context(), line, req.Quantity); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.response(c))
}

func (h *CartHandler) patchLine(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartLineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.stores.Cart(c).UpdateQuantity(c.Request().Context(), productID, req.Quantity); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.response(c))
}

func (h *CartHandler) deleteLine(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.stores.Cart(c).Remove(c.Request().Context(), productID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.response(c))
}

func (h *CartHandler) clear(c echo.Context) error {
	if err := h.stores.Cart(c).Clear(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.response(c))
}

func (h *CartHandler) response(c echo.Context) CartResponse {
	ctx := c.Request().Context()
	s := h.stores.Cart(c)
	return CartResponse{
		Items: s.Items(ctx),
		Count: s.Count(ctx),
		Total: s.Total(ctx),
	}
}
