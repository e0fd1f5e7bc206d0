package usecase

import (
	"context"
	"net/http"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
)

type CatalogUsecase struct {
	products repo.ProductRepository
}

// DI
func NewCatalogUsecase(products repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products}
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// 在庫ありの商品だけ（POS画面用）
func (u *CatalogUsecase) ListAvailable(ctx context.Context) (ProductListOutput, error) {
	return u.list(ctx, true)
}

// 全商品（在庫切れ含む）
func (u *CatalogUsecase) ListAll(ctx context.Context) (ProductListOutput, error) {
	return u.list(ctx, false)
}

func (u *CatalogUsecase) list(ctx context.Context, inStockOnly bool) (ProductListOutput, error) {
	products, err := u.products.List(ctx, inStockOnly)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, CodeStorage, "db error")
	}
	return ProductListOutput{Items: products, Total: len(products)}, nil
}
