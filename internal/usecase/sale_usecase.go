package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
)

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type SaleUsecase struct {
	tx           repo.TransactionManager
	transactions repo.TransactionRepository
	idGen        IDGenerator
	clock        Clock
}

// DI
func NewSaleUsecase(
	tx repo.TransactionManager,
	transactions repo.TransactionRepository,
	idGen IDGenerator,
	clock Clock,
) *SaleUsecase {
	return &SaleUsecase{
		tx:           tx,
		transactions: transactions,
		idGen:        idGen,
		clock:        clock,
	}
}

type SaleItemInput struct {
	ProductID int64
	Quantity  int64
}

type ProcessSaleInput struct {
	CustomerID *int64
	Items      []SaleItemInput
}

type SaleOutput struct {
	TransactionID int64  `json:"transaction_id"`
	ReceiptNo     string `json:"receipt_no"`
	Total         int64  `json:"total"`
}

// 売上処理。検証→ヘッダ作成→明細作成→在庫減算を1トランザクションで行う。
// 途中で失敗したら全部rollback（明細だけ・減算だけの中途半端な状態を残さない）。
func (u *SaleUsecase) ProcessSale(ctx context.Context, in ProcessSaleInput) (SaleOutput, error) {
	if len(in.Items) == 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, CodeEmptyCart, "No items in cart")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return SaleOutput{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid product_id")
		}
		if it.Quantity <= 0 {
			return SaleOutput{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "quantity must be >= 1")
		}
	}

	var out SaleOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := u.clock.Now()

		//全明細を検証。単価はここで1回だけ読んで合計にも明細にも使う。
		lines := make([]model.TransactionItem, 0, len(in.Items))
		names := make([]string, 0, len(in.Items))
		var total int64 = 0

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, CodeInsufficientStock, "Insufficient stock for product")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, CodeStorage, "db error")
			}
			if p.Stock < it.Quantity {
				return NewHTTPError(http.StatusBadRequest, CodeInsufficientStock, fmt.Sprintf("Insufficient stock for %s", p.Name))
			}

			lines = append(lines, model.TransactionItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     p.Price,
				CreatedAt: now,
			})
			names = append(names, p.Name)
			total += p.Price * it.Quantity
		}

		//全明細が通ってからヘッダを作る
		receiptNo := u.idGen.NewID()
		transactionID, err := r.Transactions().Create(ctx, model.Transaction{
			CustomerID:      in.CustomerID,
			ReceiptNo:       receiptNo,
			Total:           total,
			TransactionDate: now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, CodeStorage, "db error")
		}

		if err := r.TransactionItems().CreateBulk(ctx, transactionID, lines); err != nil {
			return NewHTTPError(http.StatusInternalServerError, CodeStorage, "db error")
		}

		//条件付きUPDATEで減算。0件更新は同時実行で在庫が先に減ったケースなので
		//ここで在庫不足にして全体をrollbackする。
		for i, it := range in.Items {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, CodeStorage, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, CodeInsufficientStock, fmt.Sprintf("Insufficient stock for %s", names[i]))
			}
		}

		out = SaleOutput{
			TransactionID: transactionID,
			ReceiptNo:     receiptNo,
			Total:         total,
		}
		return nil
	})

	if err != nil {
		return SaleOutput{}, err
	}
	return out, nil
}

type TransactionListOutput struct {
	Items []repo.TransactionListRow `json:"items"`
	Total int                       `json:"total"`
}

// 顧客名・NRC付きで日付の新しい順
func (u *SaleUsecase) ListTransactions(ctx context.Context) (TransactionListOutput, error) {
	rows, err := u.transactions.ListWithCustomer(ctx)
	if err != nil {
		return TransactionListOutput{}, NewHTTPError(http.StatusInternalServerError, CodeStorage, "db error")
	}
	return TransactionListOutput{Items: rows, Total: len(rows)}, nil
}
