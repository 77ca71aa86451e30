package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseSettlement 지출 정산 항목. 카테고리 계좌 담당자(from_user)가
// 지출자(to_user)에게 송금해야 하는 금액을 나타낸다.
// (month, category, to_user) 복합 유니크 인덱스가 동시 생성 경합에서
// 같은 달이 두 번 생성되는 것을 차단한다.
type ExpenseSettlement struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Month       time.Time       `json:"month" gorm:"type:date;not null;uniqueIndex:uniq_settlement_month_cat_to"` // 정산 대상월 1일
	CategoryID  uint            `json:"category_id" gorm:"not null;uniqueIndex:uniq_settlement_month_cat_to"`
	FromUser    string          `json:"from_user" gorm:"size:50;not null;index"` // 송금자 (예산 계좌 담당자)
	ToUser      string          `json:"to_user" gorm:"size:50;not null;uniqueIndex:uniq_settlement_month_cat_to"` // 수신자 (지출한 사람)
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	IsCompleted bool            `json:"is_completed" gorm:"default:false"`
	CompletedAt *time.Time      `json:"completed_at"`
	CreatedAt   time.Time       `json:"created_at"`

	Category *BudgetCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName 테이블명
func (ExpenseSettlement) TableName() string {
	return "expense_settlements"
}
