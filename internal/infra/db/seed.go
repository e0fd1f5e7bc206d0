package db

import (
	"pos/internal/domain/model"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// 初期カタログ。productsが空のときだけ投入する。
func SeedCatalog(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count products")
	}
	if count > 0 {
		return nil
	}

	starter := []model.Product{
		{Name: "Rice (5kg)", Price: 15000, Stock: 100, Category: "Groceries"},
		{Name: "Cooking Oil (1L)", Price: 8500, Stock: 50, Category: "Groceries"},
		{Name: "Sugar (1kg)", Price: 4500, Stock: 75, Category: "Groceries"},
		{Name: "Salt (500g)", Price: 1500, Stock: 100, Category: "Groceries"},
		{Name: "Soap Bar", Price: 2000, Stock: 60, Category: "Household"},
		{Name: "Toothpaste", Price: 3500, Stock: 40, Category: "Household"},
		{Name: "Bottled Water (1L)", Price: 1000, Stock: 200, Category: "Beverages"},
		{Name: "Soft Drink", Price: 1500, Stock: 150, Category: "Beverages"},
	}

	if err := gormDB.Create(&starter).Error; err != nil {
		return errors.Wrap(err, "seed products")
	}

	log.WithField("count", len(starter)).Info("seeded starter catalog")
	return nil
}
