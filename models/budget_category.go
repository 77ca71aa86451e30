package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 예산 유형. 공유 예산에는 유형별로 하나의 카테고리만 존재한다.
const (
	BudgetTypeEvent    = "event"    // 경조사비
	BudgetTypeCultural = "cultural" // 문화/여행비
	BudgetTypeSavings  = "savings"  // 저축
	BudgetTypeLiving   = "living"   // 생활비
)

// BudgetTypeLabels 화면 표시용 한글 라벨
var BudgetTypeLabels = map[string]string{
	BudgetTypeEvent:    "경조사비",
	BudgetTypeCultural: "문화/여행비",
	BudgetTypeSavings:  "저축",
	BudgetTypeLiving:   "생활비",
}

// budgetTypeOrder 화면 정렬 순서: 생활비 → 문화/여행비 → 경조사비 → 저축
var budgetTypeOrder = map[string]int{
	BudgetTypeLiving:   0,
	BudgetTypeCultural: 1,
	BudgetTypeEvent:    2,
	BudgetTypeSavings:  3,
}

// BudgetTypeOrder 알 수 없는 유형은 맨 뒤로 정렬한다
func BudgetTypeOrder(budgetType string) int {
	if order, ok := budgetTypeOrder[budgetType]; ok {
		return order
	}
	return 99
}

// IsValidBudgetType 유형 enum 검증
func IsValidBudgetType(budgetType string) bool {
	_, ok := BudgetTypeLabels[budgetType]
	return ok
}

// BudgetCategory 예산 카테고리. 사용자 간 공유되며 생성자만 소유하지 않는다.
type BudgetCategory struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"size:50;not null"`
	Type            string          `json:"type" gorm:"size:20;not null;uniqueIndex"` // event | cultural | savings | living
	AllocatedAmount decimal.Decimal `json:"allocated_amount" gorm:"type:decimal(12,2);not null;default:0"`
	InitialBalance  decimal.Decimal `json:"initial_balance" gorm:"type:decimal(12,2);not null;default:0"` // 초기 잔액 (기존 잔액 보정용)
	UserID          *uint           `json:"user_id"`                                 // 생성한 사용자
	AccountID       *uint           `json:"account_id"`                              // 입금 계좌
	DepositManager  string          `json:"deposit_manager" gorm:"size:50"`          // 입금 담당자 (저축은 비움)
	CreatedAt       time.Time       `json:"created_at"`

	Account *BankAccount `json:"account,omitempty" gorm:"foreignKey:AccountID"`
}

// TableName 테이블명
func (BudgetCategory) TableName() string {
	return "budget_categories"
}

// IsSavings 저축 유형 여부
func (c *BudgetCategory) IsSavings() bool {
	return c.Type == BudgetTypeSavings
}

// IsResponsible 해당 사용자가 입금 책임을 지는 카테고리인지.
// 저축은 담당자가 없으므로 모든 사용자가 책임지고, 그 외에는 입금 담당자 본인만 책임진다.
func (c *BudgetCategory) IsResponsible(username string) bool {
	return c.IsSavings() || c.DepositManager == username
}

// ResponsibleCategories 사용자의 책임 카테고리 목록.
// 입금 항목 생성과 완료 판정이 모두 이 함수를 기준으로 하므로 다른 곳에서 조건을 재구현하지 않는다.
func ResponsibleCategories(username string, categories []BudgetCategory) []BudgetCategory {
	var result []BudgetCategory
	for _, c := range categories {
		if c.IsResponsible(username) {
			result = append(result, c)
		}
	}
	return result
}
