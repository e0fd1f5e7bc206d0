package repository

import (
	"context"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"gorm.io/gorm"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

func (r *TransactionGormRepository) Create(ctx context.Context, t model.Transaction) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return 0, err
	}
	return t.ID, nil
}

// 顧客名・NRC付きで日付の新しい順
// 匿名販売はcustomer側がNULLのまま返る。
func (r *TransactionGormRepository) ListWithCustomer(ctx context.Context) ([]repo.TransactionListRow, error) {
	var rows []repo.TransactionListRow
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("transactions.id, transactions.customer_id, transactions.receipt_no, transactions.total, transactions.transaction_date, customers.name AS customer_name, customers.nrc AS customer_nrc").
		Joins("LEFT JOIN customers ON customers.id = transactions.customer_id").
		Order("transactions.transaction_date desc").
		Order("transactions.id desc").
		Scan(&rows).Error
	if err != nil {
		return []repo.TransactionListRow{}, err
	}
	return rows, nil
}
