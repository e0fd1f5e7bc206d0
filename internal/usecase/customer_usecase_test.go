package usecase_test

import (
	"context"
	"testing"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
	"pos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CustCustomerRepoMock struct{ mock.Mock }

func (m *CustCustomerRepoMock) FindByNRC(ctx context.Context, nrc string) (model.Customer, error) {
	args := m.Called(ctx, nrc)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustCustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *CustCustomerRepoMock) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]model.Customer)
	return customers, args.Error(1)
}

// =====================
// VerifyNRC
// =====================

func TestCustomerUsecase_VerifyNRC_Blank(t *testing.T) {
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	_, err := uc.VerifyNRC(context.Background(), "   ")
	assertErrContains(t, err, "NRC number is required")
	assertErrCode(t, err, usecase.CodeValidation)

	cRepo.AssertNotCalled(t, "FindByNRC", mock.Anything, mock.Anything)
}

// 未登録はverified=falseで正常応答（エラーではない）
func TestCustomerUsecase_VerifyNRC_NotFound(t *testing.T) {
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("FindByNRC", mock.Anything, "12/ABC(N)123456").Return(model.Customer{}, repo.ErrNotFound)

	out, err := uc.VerifyNRC(context.Background(), "12/ABC(N)123456")
	assert.NoError(t, err)
	assert.False(t, out.Verified)
	assert.Nil(t, out.Customer)
	assert.Contains(t, out.Message, "register")
}

func TestCustomerUsecase_VerifyNRC_Found(t *testing.T) {
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("FindByNRC", mock.Anything, "12/ABC(N)123456").Return(model.Customer{
		ID:    3,
		NRC:   "12/ABC(N)123456",
		Name:  "Aung Aung",
		Phone: "09-111222333",
	}, nil)

	out, err := uc.VerifyNRC(context.Background(), " 12/ABC(N)123456 ")
	assert.NoError(t, err)
	assert.True(t, out.Verified)
	if assert.NotNil(t, out.Customer) {
		assert.Equal(t, int64(3), out.Customer.ID)
		assert.Equal(t, "Aung Aung", out.Customer.Name)
		assert.Equal(t, "12/ABC(N)123456", out.Customer.NRC)
	}

	cRepo.AssertExpectations(t)
}

// =====================
// Register
// =====================

func TestCustomerUsecase_Register_Validation(t *testing.T) {
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	//NRC・名前どちらが空でも書き込み前に弾く
	_, err := uc.Register(context.Background(), usecase.RegisterCustomerInput{NRC: "", Name: "Aung Aung"})
	assertErrContains(t, err, "NRC and Name are required")

	_, err = uc.Register(context.Background(), usecase.RegisterCustomerInput{NRC: "12/ABC(N)123456", Name: "  "})
	assertErrCode(t, err, usecase.CodeValidation)

	cRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerUsecase_Register_Duplicate(t *testing.T) {
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Customer")).Return(model.Customer{}, repo.ErrDuplicate)

	_, err := uc.Register(context.Background(), usecase.RegisterCustomerInput{
		NRC:  "12/ABC(N)123456",
		Name: "Aung Aung",
	})
	assertErrContains(t, err, "Customer with this NRC already exists")
	assertErrCode(t, err, usecase.CodeDuplicate)
}

func TestCustomerUsecase_Register_Success(t *testing.T) {
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		//trim済み・verified=trueで保存される
		return c.NRC == "12/ABC(N)123456" && c.Name == "Aung Aung" && c.Phone == "09-111222333" && c.Verified
	})).Return(model.Customer{
		ID:       5,
		NRC:      "12/ABC(N)123456",
		Name:     "Aung Aung",
		Phone:    "09-111222333",
		Verified: true,
	}, nil)

	out, err := uc.Register(context.Background(), usecase.RegisterCustomerInput{
		NRC:   " 12/ABC(N)123456 ",
		Name:  " Aung Aung ",
		Phone: " 09-111222333 ",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
	assert.Equal(t, "12/ABC(N)123456", out.NRC)

	cRepo.AssertExpectations(t)
}

// シナリオ: 未登録NRCをverify → verified=false → そのまま登録すると成功する
func TestCustomerUsecase_VerifyThenRegister(t *testing.T) {
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("FindByNRC", mock.Anything, "9/XYZ(N)000111").Return(model.Customer{}, repo.ErrNotFound)
	cRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Customer")).Return(model.Customer{
		ID:   8,
		NRC:  "9/XYZ(N)000111",
		Name: "Su Su",
	}, nil)

	v, err := uc.VerifyNRC(context.Background(), "9/XYZ(N)000111")
	assert.NoError(t, err)
	assert.False(t, v.Verified)

	out, err := uc.Register(context.Background(), usecase.RegisterCustomerInput{
		NRC:  "9/XYZ(N)000111",
		Name: "Su Su",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(8), out.ID)
}

// =====================
// ListCustomers
// =====================

func TestCustomerUsecase_ListCustomers_Success(t *testing.T) {
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("List", mock.Anything).Return([]model.Customer{{ID: 2}, {ID: 1}}, nil)

	out, err := uc.ListCustomers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, int64(2), out.Items[0].ID)
}

func TestCustomerUsecase_ListCustomers_StorageError(t *testing.T) {
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("List", mock.Anything).Return(nil, assert.AnError)

	_, err := uc.ListCustomers(context.Background())
	assertErrCode(t, err, usecase.CodeStorage)
}
