package service

import (
	"fmt"
	"sort"
	"time"

	"gagyebu/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BuildSettlements 대상월 지출에서 정산 항목을 계산하는 순수 함수.
// (카테고리, 지출자) 단위로 금액을 합산한 뒤, 카테고리 계좌 담당자가
// 지출자와 다른 그룹만 "담당자 → 지출자" 송금 항목으로 만든다.
// 카테고리 없는 지출과 저축 카테고리 지출은 정산 대상이 아니다.
// 자기 계좌에서 자기가 쓴 그룹(담당자 == 지출자)은 송금할 것이 없으므로 버린다.
func BuildSettlements(month time.Time, expenses []models.Expense) []models.ExpenseSettlement {
	type groupKey struct {
		categoryID uint
		spender    string
	}
	type group struct {
		total         decimal.Decimal
		accountHolder string
	}

	groups := make(map[groupKey]*group)
	for _, e := range expenses {
		if e.Category == nil || e.Category.IsSavings() {
			continue
		}
		if e.User == nil {
			continue
		}
		holder := ""
		if e.Category.Account != nil {
			holder = e.Category.Account.AccountHolder
		}
		key := groupKey{categoryID: *e.CategoryID, spender: e.User.Username}
		g, ok := groups[key]
		if !ok {
			g = &group{total: decimal.Zero, accountHolder: holder}
			groups[key] = g
		}
		g.total = g.total.Add(e.Amount)
	}

	var settlements []models.ExpenseSettlement
	for key, g := range groups {
		if g.accountHolder == "" || g.accountHolder == key.spender {
			continue
		}
		settlements = append(settlements, models.ExpenseSettlement{
			Month:      month,
			CategoryID: key.categoryID,
			FromUser:   g.accountHolder, // 송금자 (계좌 담당자)
			ToUser:     key.spender,     // 수신자 (지출한 사람)
			Amount:     g.total,
		})
	}

	// 맵 순회 순서에 결과가 흔들리지 않도록 고정 정렬
	sort.Slice(settlements, func(i, j int) bool {
		if settlements[i].CategoryID != settlements[j].CategoryID {
			return settlements[i].CategoryID < settlements[j].CategoryID
		}
		return settlements[i].ToUser < settlements[j].ToUser
	})
	return settlements
}

// GenerateExpenseSettlements 대상월 정산 항목 생성.
// 해당 월 정산이 하나라도 존재하면 이미 생성된 것으로 보고 아무것도 하지 않는다(멱등).
// 존재 확인과 생성을 한 트랜잭션으로 묶고, (month, category, to_user) 유니크
// 인덱스가 동시 트리거로 인한 중복 생성을 최종적으로 차단한다.
// 생성된 항목(없으면 빈 슬라이스)을 돌려준다.
func GenerateExpenseSettlements(db *gorm.DB, month time.Time) ([]models.ExpenseSettlement, error) {
	monthFirst := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	monthLast := MonthEnd(monthFirst)

	var created []models.ExpenseSettlement
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ExpenseSettlement{}).
			Where("month = ?", monthFirst).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			// 이미 생성됨
			return nil
		}

		var expenses []models.Expense
		if err := tx.Preload("User").
			Preload("Category").
			Preload("Category.Account").
			Where("date >= ? AND date <= ?", monthFirst, monthLast).
			Find(&expenses).Error; err != nil {
			return err
		}

		settlements := BuildSettlements(monthFirst, expenses)
		if len(settlements) == 0 {
			return nil
		}
		if err := tx.Create(&settlements).Error; err != nil {
			return fmt.Errorf("정산 항목 생성 실패: %w", err)
		}
		created = settlements
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AllDepositsCompleted 해당 월의 정산 대상 사용자 전원이 입금을 완료했는지.
// 정산 대상은 승인된 사용자 중 dev 계정을 뺀 전원이며, 그중 입금 레코드가
// 없거나 미완료인 사용자가 하나라도 있으면 false 다.
// dev 계정만 있는 환경에서는 입금 레코드 기준으로 판정한다.
func AllDepositsCompleted(db *gorm.DB, month time.Time) (bool, error) {
	var users []models.User
	if err := db.Where("is_approved = ?", true).Find(&users).Error; err != nil {
		return false, err
	}
	var deposits []models.MonthlyDeposit
	if err := db.Where("month = ?", month).Find(&deposits).Error; err != nil {
		return false, err
	}

	completedBy := make(map[uint]bool, len(deposits))
	for _, d := range deposits {
		completedBy[d.UserID] = d.IsCompleted
	}

	targets := 0
	for i := range users {
		if users[i].IsDevUser() {
			continue
		}
		targets++
		if !completedBy[users[i].ID] {
			return false, nil
		}
	}
	if targets > 0 {
		return true, nil
	}

	if len(deposits) == 0 {
		return false, nil
	}
	for _, d := range deposits {
		if !d.IsCompleted {
			return false, nil
		}
	}
	return true, nil
}
