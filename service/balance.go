package service

import (
	"sort"

	"gagyebu/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryBalance 카테고리별 잔액 뷰.
// 잔액 = 초기 잔액 + 완료된 입금 누계 - 지출 누계
type CategoryBalance struct {
	models.BudgetCategory
	TypeLabel      string          `json:"type_label"`
	MonthlySpent   decimal.Decimal `json:"monthly_spent"`   // 이번 달 지출
	TotalDeposited decimal.Decimal `json:"total_deposited"` // 완료된 입금 누계
	TotalSpent     decimal.Decimal `json:"total_spent"`     // 지출 누계 (전체 기간)
	Balance        decimal.Decimal `json:"balance"`
}

type categorySum struct {
	CategoryID *uint
	Total      decimal.Decimal
}

func sumMap(sums []categorySum) map[uint]decimal.Decimal {
	m := make(map[uint]decimal.Decimal, len(sums))
	for _, s := range sums {
		if s.CategoryID != nil {
			m[*s.CategoryID] = s.Total
		}
	}
	return m
}

func orZero(m map[uint]decimal.Decimal, id uint) decimal.Decimal {
	if v, ok := m[id]; ok {
		return v
	}
	return decimal.Zero
}

// composeBalances 잔액 계산의 순수 부분. 호출 순서와 무관하게 같은 입력이면 같은 결과다.
func composeBalances(categories []models.BudgetCategory, deposited, spent, monthly map[uint]decimal.Decimal) []CategoryBalance {
	balances := make([]CategoryBalance, 0, len(categories))
	for _, c := range categories {
		totalDeposited := orZero(deposited, c.ID)
		totalSpent := orZero(spent, c.ID)
		balances = append(balances, CategoryBalance{
			BudgetCategory: c,
			TypeLabel:      models.BudgetTypeLabels[c.Type],
			MonthlySpent:   orZero(monthly, c.ID),
			TotalDeposited: totalDeposited,
			TotalSpent:     totalSpent,
			Balance:        c.InitialBalance.Add(totalDeposited).Sub(totalSpent),
		})
	}
	// 고정 표시 순서: 생활비 → 문화/여행비 → 경조사비 → 저축
	sort.SliceStable(balances, func(i, j int) bool {
		return models.BudgetTypeOrder(balances[i].Type) < models.BudgetTypeOrder(balances[j].Type)
	})
	return balances
}

// CategoryBalances 카테고리별 잔액 뷰 계산. 읽기 전용이며 매번 원장에서 다시 계산한다.
func CategoryBalances(db *gorm.DB, clock Clock) ([]CategoryBalance, error) {
	var categories []models.BudgetCategory
	if err := db.Preload("Account").Find(&categories).Error; err != nil {
		return nil, err
	}

	// 완료된 입금 누계
	var depositSums []categorySum
	if err := db.Model(&models.DepositItem{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS total").
		Where("is_completed = ?", true).
		Group("category_id").
		Scan(&depositSums).Error; err != nil {
		return nil, err
	}

	// 지출 누계 (전체 기간)
	var expenseSums []categorySum
	if err := db.Model(&models.Expense{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS total").
		Group("category_id").
		Scan(&expenseSums).Error; err != nil {
		return nil, err
	}

	// 이번 달 지출
	monthStart, monthEnd := CurrentMonthRange(clock)
	var monthlySums []categorySum
	if err := db.Model(&models.Expense{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS total").
		Where("date >= ? AND date <= ?", monthStart, monthEnd).
		Group("category_id").
		Scan(&monthlySums).Error; err != nil {
		return nil, err
	}

	return composeBalances(categories, sumMap(depositSums), sumMap(expenseSums), sumMap(monthlySums)), nil
}
