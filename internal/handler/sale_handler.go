package handler

import (
	"net/http"

	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SaleHandler struct {
	uc *usecase.SaleUsecase
}

func NewSaleHandler(uc *usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

type SaleItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type SaleCreateRequest struct {
	CustomerID *int64            `json:"customer_id"`
	Items      []SaleItemRequest `json:"items"`
}

func (h *SaleHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/sales", h.create)
	e.GET("/transactions", h.listTransactions)
}

func (h *SaleHandler) create(c echo.Context) error {
	var req SaleCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: usecase.CodeValidation})
	}

	items := make([]usecase.SaleItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.SaleItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	out, err := h.uc.ProcessSale(c.Request().Context(), usecase.ProcessSaleInput{
		CustomerID: req.CustomerID,
		Items:      items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SaleHandler) listTransactions(c echo.Context) error {
	out, err := h.uc.ListTransactions(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
