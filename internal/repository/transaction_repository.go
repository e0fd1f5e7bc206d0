package repository

import (
	"context"
	"time"

	"pos/internal/domain/model"
)

// 一覧表示用の行（顧客名・NRCをLEFT JOINで付ける）
type TransactionListRow struct {
	ID              int64     `gorm:"column:id" json:"id"`
	CustomerID      *int64    `gorm:"column:customer_id" json:"customer_id"`
	ReceiptNo       string    `gorm:"column:receipt_no" json:"receipt_no"`
	Total           int64     `gorm:"column:total" json:"total"`
	TransactionDate time.Time `gorm:"column:transaction_date" json:"transaction_date"`
	CustomerName    *string   `gorm:"column:customer_name" json:"customer_name"`
	CustomerNRC     *string   `gorm:"column:customer_nrc" json:"customer_nrc"`
}

type TransactionRepository interface {
	Create(ctx context.Context, t model.Transaction) (int64, error)

	// 顧客情報付きで日付の新しい順
	ListWithCustomer(ctx context.Context) ([]TransactionListRow, error)
}
