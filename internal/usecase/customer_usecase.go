package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
)

type CustomerUsecase struct {
	customers repo.CustomerRepository
}

// DI
func NewCustomerUsecase(customers repo.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customers: customers}
}

type CustomerOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	NRC   string `json:"nrc"`
	Phone string `json:"phone"`
}

type VerifyOutput struct {
	Verified bool            `json:"verified"`
	Customer *CustomerOutput `json:"customer,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// NRCで顧客を照会する。未登録はエラーではなくverified=falseで返す。
func (u *CustomerUsecase) VerifyNRC(ctx context.Context, nrc string) (VerifyOutput, error) {
	nrc = strings.TrimSpace(nrc)
	if nrc == "" {
		return VerifyOutput{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "NRC number is required")
	}

	c, err := u.customers.FindByNRC(ctx, nrc)
	if err == repo.ErrNotFound {
		return VerifyOutput{
			Verified: false,
			Message:  "Customer not found. Please register.",
		}, nil
	}
	if err != nil {
		return VerifyOutput{}, NewHTTPError(http.StatusInternalServerError, CodeStorage, "db error")
	}

	return VerifyOutput{
		Verified: true,
		Customer: &CustomerOutput{
			ID:    c.ID,
			Name:  c.Name,
			NRC:   c.NRC,
			Phone: c.Phone,
		},
	}, nil
}

type RegisterCustomerInput struct {
	NRC     string
	Name    string
	Phone   string
	Address string
}

// 顧客登録。NRCと名前は必須、NRCは全顧客で一意。
func (u *CustomerUsecase) Register(ctx context.Context, in RegisterCustomerInput) (CustomerOutput, error) {
	nrc := strings.TrimSpace(in.NRC)
	name := strings.TrimSpace(in.Name)
	if nrc == "" || name == "" {
		return CustomerOutput{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "NRC and Name are required")
	}

	now := time.Now()
	c, err := u.customers.Create(ctx, model.Customer{
		NRC:       nrc,
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Verified:  true,
		CreatedAt: now,
	})
	if err == repo.ErrDuplicate {
		return CustomerOutput{}, NewHTTPError(http.StatusConflict, CodeDuplicate, "Customer with this NRC already exists")
	}
	if err != nil {
		return CustomerOutput{}, NewHTTPError(http.StatusInternalServerError, CodeStorage, "db error")
	}

	return CustomerOutput{
		ID:    c.ID,
		Name:  c.Name,
		NRC:   c.NRC,
		Phone: c.Phone,
	}, nil
}

type CustomerListOutput struct {
	Items []model.Customer `json:"items"`
	Total int              `json:"total"`
}

// 登録日時の新しい順
func (u *CustomerUsecase) ListCustomers(ctx context.Context) (CustomerListOutput, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return CustomerListOutput{}, NewHTTPError(http.StatusInternalServerError, CodeStorage, "db error")
	}
	return CustomerListOutput{Items: customers, Total: len(customers)}, nil
}
