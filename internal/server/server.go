package server

import (
	"time"

	"pos/internal/handler"
	"pos/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

func Start(
	addr string,
	logger *log.Logger,
	requestTimeout time.Duration,
	customerH *handler.CustomerHandler,
	productH *handler.ProductHandler,
	saleH *handler.SaleHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.RequestTimeout(requestTimeout))

	RegisterRoutes(e, customerH, productH, saleH)

	return e.Start(addr)
}
