package models

import "time"

// BankAccount 입금 계좌. 예산 카테고리와 사용자별 정산 수령 계좌에서 참조한다.
type BankAccount struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	BankName      string    `json:"bank_name" gorm:"size:50;not null"`      // 은행명 (신한, 국민, 카카오뱅크 등)
	AccountNumber string    `json:"account_number" gorm:"size:50;not null"` // 계좌번호
	AccountHolder string    `json:"account_holder" gorm:"size:50;not null;index"` // 예금주
	Alias         string    `json:"alias" gorm:"size:50"`                   // 별칭 (생활비 통장, 저축 통장 등)
	CreatedAt     time.Time `json:"created_at"`
}

// TableName 테이블명
func (BankAccount) TableName() string {
	return "bank_accounts"
}
