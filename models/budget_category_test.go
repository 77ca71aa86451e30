package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponsibleCategories(t *testing.T) {
	categories := []BudgetCategory{
		{ID: 1, Name: "생활비", Type: BudgetTypeLiving, DepositManager: "권혁상"},
		{ID: 2, Name: "문화/여행비", Type: BudgetTypeCultural, DepositManager: "이현경"},
		{ID: 3, Name: "경조사비", Type: BudgetTypeEvent, DepositManager: "권혁상"},
		{ID: 4, Name: "저축", Type: BudgetTypeSavings}, // 담당자 없음
	}

	// 저축은 모든 사용자 책임 + 본인 담당 카테고리
	got := ResponsibleCategories("권혁상", categories)
	var ids []uint
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []uint{1, 3, 4}, ids)

	got = ResponsibleCategories("이현경", categories)
	ids = nil
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []uint{2, 4}, ids)

	// 담당 카테고리가 없어도 저축은 항상 포함
	got = ResponsibleCategories("아무개", categories)
	assert.Len(t, got, 1)
	assert.Equal(t, BudgetTypeSavings, got[0].Type)
}

func TestBudgetTypeOrder(t *testing.T) {
	types := []string{BudgetTypeSavings, BudgetTypeEvent, BudgetTypeLiving, BudgetTypeCultural, "unknown"}
	sort.Slice(types, func(i, j int) bool {
		return BudgetTypeOrder(types[i]) < BudgetTypeOrder(types[j])
	})
	// 생활비 → 문화/여행비 → 경조사비 → 저축 → 알 수 없는 유형
	assert.Equal(t, []string{BudgetTypeLiving, BudgetTypeCultural, BudgetTypeEvent, BudgetTypeSavings, "unknown"}, types)
}

func TestIsValidBudgetType(t *testing.T) {
	assert.True(t, IsValidBudgetType(BudgetTypeLiving))
	assert.True(t, IsValidBudgetType(BudgetTypeSavings))
	assert.False(t, IsValidBudgetType(""))
	assert.False(t, IsValidBudgetType("food"))
}
