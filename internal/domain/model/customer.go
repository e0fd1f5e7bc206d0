package model

import "time"

// NRC（国民登録番号）で一意に識別する顧客
// 登録後は更新・削除しない
type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	NRC       string    `gorm:"column:nrc;type:varchar(64);not null;uniqueIndex" json:"nrc"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(32)" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
