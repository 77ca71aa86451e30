package models

import "time"

// PaymentMethod 결제 수단. 소유자별로 관리되고 기본 결제 수단은 소유자당 하나만 허용한다.
type PaymentMethod struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:50;not null"` // 현금, 카드, 커스텀 이름
	UserID        uint      `json:"user_id" gorm:"index"`
	LinkedAccount string    `json:"linked_account" gorm:"size:100;not null"` // 연결된 계좌 표시 문자열
	Owner         string    `json:"owner" gorm:"size:50;index"`              // 소유자 username
	IsDefault     bool      `json:"is_default" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName 테이블명
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
