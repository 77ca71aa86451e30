package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense 지출 기록. 모든 사용자에게 공유되며 누구나 수정/삭제할 수 있다.
type Expense struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Description     string          `json:"description" gorm:"size:255;not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date            time.Time       `json:"date" gorm:"type:date;not null;index"`
	UserID          uint            `json:"user_id" gorm:"not null;index"` // 지출한 사용자
	CategoryID      *uint           `json:"category_id" gorm:"index"`
	PaymentMethodID *uint           `json:"payment_method_id"`
	IsOfflineSync   bool            `json:"is_offline_sync" gorm:"default:false"` // 오프라인 동기화로 들어온 기록
	CreatedAt       time.Time       `json:"created_at"`

	User          *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Category      *BudgetCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	PaymentMethod *PaymentMethod  `json:"payment_method,omitempty" gorm:"foreignKey:PaymentMethodID"`
}

// TableName 테이블명
func (Expense) TableName() string {
	return "expenses"
}
