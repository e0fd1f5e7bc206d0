package model

import "time"

// 売上ヘッダ。作成後は不変。
// CustomerIDはnil可（匿名販売）
type Transaction struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID      *int64    `gorm:"index" json:"customer_id"`
	ReceiptNo       string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"receipt_no"`
	Total           int64     `gorm:"not null" json:"total"`
	TransactionDate time.Time `gorm:"not null;index" json:"transaction_date"`
}
