package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyDeposit 사용자별 월 정산 입금 레코드. (user, month) 조합은 유일하다.
// month 는 항상 대상월(지난달)의 1일이다.
type MonthlyDeposit struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"not null;uniqueIndex:uniq_deposit_user_month"`
	Month         time.Time       `json:"month" gorm:"type:date;not null;uniqueIndex:uniq_deposit_user_month"`
	Salary        decimal.Decimal `json:"salary" gorm:"type:decimal(12,2);not null"`
	TotalBudget   decimal.Decimal `json:"total_budget" gorm:"type:decimal(12,2);not null"`   // 저축 제외 책임 카테고리 배정액 합계
	SavingsAmount decimal.Decimal `json:"savings_amount" gorm:"type:decimal(12,2);not null"` // max(0, 월급 - 차감액)
	IsCompleted   bool            `json:"is_completed" gorm:"default:false"`
	DepositedAt   *time.Time      `json:"deposited_at"`
	CreatedAt     time.Time       `json:"created_at"`

	User  *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []DepositItem `json:"items,omitempty" gorm:"foreignKey:DepositID"`
}

// TableName 테이블명
func (MonthlyDeposit) TableName() string {
	return "monthly_deposits"
}

// DepositItem 카테고리별 입금 항목. 생성 시점의 책임 카테고리와 1:1 로 만들어진다.
type DepositItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	DepositID   uint            `json:"deposit_id" gorm:"not null;index"`
	CategoryID  uint            `json:"category_id" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	IsCompleted bool            `json:"is_completed" gorm:"default:false"`
	CompletedAt *time.Time      `json:"completed_at"`
	CreatedAt   time.Time       `json:"created_at"`

	Deposit  *MonthlyDeposit `json:"-" gorm:"foreignKey:DepositID"`
	Category *BudgetCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName 테이블명
func (DepositItem) TableName() string {
	return "deposit_items"
}
