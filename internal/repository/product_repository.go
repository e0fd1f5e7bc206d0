package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の取得だけを約束。在庫の減算はInventoryRepository。
type ProductRepository interface {
	// カテゴリ→名前順。inStockOnlyならstock > 0のみ。
	List(ctx context.Context, inStockOnly bool) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
}
