package server

import (
	"payetonkawa/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	authH *handler.AuthHandler,
	cartH *handler.CartHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
) {
	authH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}
