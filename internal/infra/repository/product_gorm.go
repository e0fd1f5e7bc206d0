package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// カテゴリ→名前順。inStockOnlyならstock > 0のみ。
func (r *ProductGormRepository) List(ctx context.Context, inStockOnly bool) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if inStockOnly {
		tx = tx.Where("stock > ?", 0)
	}

	var products []model.Product
	err := tx.Order("category asc").Order("name asc").Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}
