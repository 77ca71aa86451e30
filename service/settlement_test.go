package service

import (
	"testing"

	"gagyebu/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// 테스트용 지출 구성 헬퍼
func expenseOf(categoryID uint, cat *models.BudgetCategory, username string, amount string) models.Expense {
	return models.Expense{
		CategoryID: uintPtr(categoryID),
		Category:   cat,
		User:       &models.User{Username: username},
		Amount:     money(amount),
	}
}

func TestBuildSettlements(t *testing.T) {
	month := date(2024, 12, 1)

	living := &models.BudgetCategory{
		ID:   1,
		Type: models.BudgetTypeLiving,
		Account: &models.BankAccount{AccountHolder: "이현경"},
	}
	cultural := &models.BudgetCategory{
		ID:   2,
		Type: models.BudgetTypeCultural,
		Account: &models.BankAccount{AccountHolder: "권혁상"},
	}

	expenses := []models.Expense{
		// 권혁상이 이현경 담당 계좌(생활비)에서 지출 → 이현경이 권혁상에게 송금
		expenseOf(1, living, "권혁상", "30000"),
		expenseOf(1, living, "권혁상", "20000"),
		// 이현경이 자기 담당 계좌에서 지출 → 자기 송금은 생략
		expenseOf(1, living, "이현경", "15000"),
		// 이현경이 권혁상 담당 계좌(문화/여행비)에서 지출
		expenseOf(2, cultural, "이현경", "42000.50"),
	}

	settlements := BuildSettlements(month, expenses)
	require.Len(t, settlements, 2)

	assert.Equal(t, uint(1), settlements[0].CategoryID)
	assert.Equal(t, "이현경", settlements[0].FromUser)
	assert.Equal(t, "권혁상", settlements[0].ToUser)
	assert.True(t, settlements[0].Amount.Equal(money("50000")), "금액 합산: %s", settlements[0].Amount)
	assert.Equal(t, month, settlements[0].Month)
	assert.False(t, settlements[0].IsCompleted)

	assert.Equal(t, uint(2), settlements[1].CategoryID)
	assert.Equal(t, "권혁상", settlements[1].FromUser)
	assert.Equal(t, "이현경", settlements[1].ToUser)
	assert.True(t, settlements[1].Amount.Equal(money("42000.50")))
}

func TestBuildSettlements_SkipsSavingsAndUncategorized(t *testing.T) {
	month := date(2024, 12, 1)

	savings := &models.BudgetCategory{
		ID:   4,
		Type: models.BudgetTypeSavings,
		Account: &models.BankAccount{AccountHolder: "이현경"},
	}

	expenses := []models.Expense{
		// 저축 카테고리 지출은 정산 대상이 아니다
		expenseOf(4, savings, "권혁상", "100000"),
		// 카테고리 없는 지출도 제외
		{User: &models.User{Username: "권혁상"}, Amount: money("5000")},
	}

	assert.Empty(t, BuildSettlements(month, expenses))
}

func TestBuildSettlements_NoAccountHolder(t *testing.T) {
	month := date(2024, 12, 1)

	// 계좌가 연결되지 않은 카테고리는 담당자를 알 수 없으므로 정산하지 않는다
	noAccount := &models.BudgetCategory{ID: 3, Type: models.BudgetTypeEvent}
	expenses := []models.Expense{
		expenseOf(3, noAccount, "이현경", "70000"),
	}

	assert.Empty(t, BuildSettlements(month, expenses))
}

func TestBuildSettlements_Example(t *testing.T) {
	// 사용자 A가 B 담당 카테고리에서 50000 지출 → (from=B, to=A, 50000) 한 건
	month := date(2025, 1, 1)
	cat := &models.BudgetCategory{
		ID:   1,
		Type: models.BudgetTypeLiving,
		Account: &models.BankAccount{AccountHolder: "B"},
	}
	settlements := BuildSettlements(month, []models.Expense{expenseOf(1, cat, "A", "50000")})
	require.Len(t, settlements, 1)
	assert.Equal(t, "B", settlements[0].FromUser)
	assert.Equal(t, "A", settlements[0].ToUser)
	assert.True(t, settlements[0].Amount.Equal(money("50000")))
}

func TestBuildSettlements_Deterministic(t *testing.T) {
	month := date(2024, 12, 1)
	c1 := &models.BudgetCategory{ID: 1, Type: models.BudgetTypeLiving, Account: &models.BankAccount{AccountHolder: "관리자"}}
	c2 := &models.BudgetCategory{ID: 2, Type: models.BudgetTypeCultural, Account: &models.BankAccount{AccountHolder: "관리자"}}

	expenses := []models.Expense{
		expenseOf(2, c2, "나", "1000"),
		expenseOf(1, c1, "다", "1000"),
		expenseOf(1, c1, "가", "1000"),
	}

	// 입력 순서와 무관하게 (카테고리, 수신자) 정렬 고정
	for i := 0; i < 10; i++ {
		settlements := BuildSettlements(month, expenses)
		require.Len(t, settlements, 3)
		assert.Equal(t, "가", settlements[0].ToUser)
		assert.Equal(t, "다", settlements[1].ToUser)
		assert.Equal(t, "나", settlements[2].ToUser)
	}
}

func TestBuildSettlements_IdempotentInput(t *testing.T) {
	// 같은 입력이면 같은 결과 — 생성 호출 자체의 멱등성은 존재 확인이 보장하고,
	// 계산 부분은 순수 함수로 재호출에 안전해야 한다.
	month := date(2024, 11, 1)
	cat := &models.BudgetCategory{ID: 1, Type: models.BudgetTypeLiving, Account: &models.BankAccount{AccountHolder: "이현경"}}
	expenses := []models.Expense{expenseOf(1, cat, "권혁상", "12345.67")}

	first := BuildSettlements(month, expenses)
	second := BuildSettlements(month, expenses)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.True(t, first[0].Amount.Equal(second[0].Amount))
	assert.Equal(t, first[0].FromUser, second[0].FromUser)
	assert.Equal(t, first[0].ToUser, second[0].ToUser)
}
