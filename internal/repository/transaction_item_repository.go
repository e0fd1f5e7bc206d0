package repository

import (
	"context"

	"pos/internal/domain/model"
)

type TransactionItemRepository interface {
	CreateBulk(ctx context.Context, transactionID int64, items []model.TransactionItem) error
	ListByTransactionID(ctx context.Context, transactionID int64) ([]model.TransactionItem, error)
}
