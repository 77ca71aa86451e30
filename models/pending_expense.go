package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingExpense 오프라인(PWA) 동기화 저널. local_id 기준으로 중복 전송을 걸러낸다.
type PendingExpense struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	LocalID         string          `json:"local_id" gorm:"size:64;not null;uniqueIndex"` // 클라이언트 UUID
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	Description     string          `json:"description" gorm:"size:255"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date            time.Time       `json:"date" gorm:"type:date;not null"`
	CategoryID      *uint           `json:"category_id"`
	PaymentMethodID *uint           `json:"payment_method_id"`
	SyncedAt        *time.Time      `json:"synced_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TableName 테이블명
func (PendingExpense) TableName() string {
	return "pending_expenses"
}
