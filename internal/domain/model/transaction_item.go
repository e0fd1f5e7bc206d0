package model

import "time"

// 売上明細
// Priceは販売時点の単価スナップショットを必ず保存。
type TransactionItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID int64     `gorm:"not null;index" json:"transaction_id"`
	ProductID     int64     `gorm:"not null;index" json:"product_id"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	Price         int64     `gorm:"not null" json:"price"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
