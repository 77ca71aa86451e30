package models

import "time"

// UserCategoryAccount 사용자별 카테고리 정산 수령 계좌. (username, category) 조합은 유일하며 upsert 로 관리한다.
type UserCategoryAccount struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username" gorm:"size:50;not null;uniqueIndex:uniq_user_category_account"`
	CategoryID uint      `json:"category_id" gorm:"not null;uniqueIndex:uniq_user_category_account"`
	AccountID  uint      `json:"account_id" gorm:"not null"` // 계좌 관리에서 등록된 계좌
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Category *BudgetCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Account  *BankAccount    `json:"account,omitempty" gorm:"foreignKey:AccountID"`
}

// TableName 테이블명
func (UserCategoryAccount) TableName() string {
	return "user_category_accounts"
}
