package service

import (
	"testing"

	"gagyebu/config"
	"gagyebu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSettlementNotice_Disabled(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: false})
	err := s.SendSettlementNotice("a@example.com", "권혁상", "2024년 12월", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "비활성화")
}

func TestSendSettlementNotice_NoRecipient(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: true})
	err := s.SendSettlementNotice("", "권혁상", "2024년 12월", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "수신자")
}

func TestGenerateSettlementBody(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: true})
	settlements := []models.ExpenseSettlement{
		{
			ToUser:   "이현경",
			Amount:   money("50000"),
			Category: &models.BudgetCategory{Name: "생활비"},
		},
	}
	body := s.generateSettlementBody("권혁상", "2024년 12월", settlements)
	assert.Contains(t, body, "2024년 12월")
	assert.Contains(t, body, "권혁상")
	assert.Contains(t, body, "이현경")
	assert.Contains(t, body, "생활비")
	assert.Contains(t, body, "50000원")
}
