package server

import (
	"net/http"

	"pos/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	customerH *handler.CustomerHandler,
	productH *handler.ProductHandler,
	saleH *handler.SaleHandler,
) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	customerH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	saleH.RegisterRoutes(e)
}
