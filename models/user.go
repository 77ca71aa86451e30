package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// RoleAdmin 관리자
	RoleAdmin = "admin"
	// RoleUser 일반 사용자
	RoleUser = "user"
)

// User 사용자. 카카오 로그인 최초 성공 시 생성되고 승인 전에는 접근이 차단된다.
// 하드 삭제는 하지 않는다.
type User struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	KakaoID          string          `json:"-" gorm:"size:64;uniqueIndex;not null"`
	Username         string          `json:"username" gorm:"size:50;not null"`
	Email            string          `json:"email" gorm:"size:100"`
	Role             string          `json:"role" gorm:"size:20;default:user"` // admin | user
	IsApproved       bool            `json:"is_approved" gorm:"default:false;index"`
	DefaultDeduction decimal.Decimal `json:"default_deduction" gorm:"type:decimal(12,2);default:0"` // 기본 차감액 (카드값, 보험료 등)
	// 정산 입금받을 기본 계좌
	BankName      string    `json:"bank_name" gorm:"size:50"`
	AccountNumber string    `json:"account_number" gorm:"size:50"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName 테이블명
func (User) TableName() string {
	return "users"
}

// IsDevUser dev 로그인으로 만들어진 계정 여부. 정산 대상 사용자 목록에서 제외한다.
func (u *User) IsDevUser() bool {
	return strings.HasPrefix(u.KakaoID, "dev-")
}
