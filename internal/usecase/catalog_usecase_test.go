package usecase_test

import (
	"context"
	"testing"

	"pos/internal/domain/model"
	"pos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CatProductRepoMock struct{ mock.Mock }

func (m *CatProductRepoMock) List(ctx context.Context, inStockOnly bool) ([]model.Product, error) {
	args := m.Called(ctx, inStockOnly)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *CatProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	panic("not used in CatalogUsecase tests")
}

func TestCatalogUsecase_ListAvailable_FiltersInStock(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	items := []model.Product{
		{ID: 7, Name: "Bottled Water (1L)", Price: 1000, Stock: 200, Category: "Beverages"},
	}
	pRepo.On("List", mock.Anything, true).Return(items, nil)

	out, err := uc.ListAvailable(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "Bottled Water (1L)", out.Items[0].Name)

	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_ListAll(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	items := []model.Product{
		{ID: 8, Name: "Soft Drink", Price: 1500, Stock: 0, Category: "Beverages"},
	}
	pRepo.On("List", mock.Anything, false).Return(items, nil)

	out, err := uc.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, int64(0), out.Items[0].Stock)
}

func TestCatalogUsecase_List_StorageError(t *testing.T) {
	pRepo := new(CatProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("List", mock.Anything, true).Return(nil, assert.AnError)

	_, err := uc.ListAvailable(context.Background())
	assertErrCode(t, err, usecase.CodeStorage)
}
