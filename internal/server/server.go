package server

import (
	"payetonkawa/internal/config"
	"payetonkawa/internal/handler"
	"payetonkawa/internal/middleware"

	"github.com/labstack/echo/v4"
)

// New はechoを組み立てて返す（起動はしない。テストでも使う）。
func New(
	cfg config.Config,
	authH *handler.AuthHandler,
	cartH *handler.CartHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	//全ルートで訪問者パーティションを割り当てる
	e.Use(middleware.Partition(cfg))

	RegisterRoutes(e, authH, cartH, productH, orderH)
	return e
}

func Start(addr string, e *echo.Echo) error {
	return e.Start(addr)
}
