package handler

import (
	"net/http"

	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

type VerifyNRCRequest struct {
	NRC string `json:"nrc"`
}

type RegisterCustomerRequest struct {
	NRC     string `json:"nrc"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type RegisterCustomerResponse struct {
	Customer usecase.CustomerOutput `json:"customer"`
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/customers/verify", h.verify)
	e.POST("/customers/register", h.register)
	e.GET("/customers", h.list)
}

func (h *CustomerHandler) verify(c echo.Context) error {
	var req VerifyNRCRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: usecase.CodeValidation})
	}

	out, err := h.uc.VerifyNRC(c.Request().Context(), req.NRC)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) register(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: usecase.CodeValidation})
	}

	out, err := h.uc.Register(c.Request().Context(), usecase.RegisterCustomerInput{
		NRC:     req.NRC,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, RegisterCustomerResponse{Customer: out})
}

func (h *CustomerHandler) list(c echo.Context) error {
	out, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
