package repository

import (
	"context"

	repo "pos/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products         repo.ProductRepository
	inventory        repo.InventoryRepository
	transactions     repo.TransactionRepository
	transactionItems repo.TransactionItemRepository
}

func (r *txReposGorm) Products() repo.ProductRepository                 { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository              { return r.inventory }
func (r *txReposGorm) Transactions() repo.TransactionRepository         { return r.transactions }
func (r *txReposGorm) TransactionItems() repo.TransactionItemRepository { return r.transactionItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:         NewProductGormRepository(tx),
			inventory:        NewInventoryGormRepository(tx),
			transactions:     NewTransactionGormRepository(tx),
			transactionItems: NewTransactionItemGormRepository(tx),
		}
		return fn(r)
	})
}
