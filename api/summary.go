package api

import (
	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/models"
	"gagyebu/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 대시보드 요약 처리기
type SummaryHandler struct {
	clock service.Clock
}

// NewSummaryHandler 요약 처리기 생성
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{clock: service.DefaultClock}
}

// Dashboard 홈 화면 요약: 카테고리 잔액/이번 달 사용액, 내 결제 수단, 최근 지출
// @Summary 대시보드 요약 조회
// @Tags 대시보드
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "조회 성공"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) Dashboard(c *gin.Context) {
	username := middleware.GetCurrentUsername(c)

	balances, err := service.CategoryBalances(database.DB, h.clock)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "잔액 계산에 실패했습니다"))
		return
	}

	var methods []models.PaymentMethod
	if err := database.DB.Where("owner = ?", username).
		Order("is_default DESC, id ASC").Find(&methods).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "결제 수단 조회에 실패했습니다"))
		return
	}

	var recent []models.Expense
	if err := database.DB.Preload("User").Preload("Category").
		Order("date DESC, created_at DESC").Limit(10).
		Find(&recent).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "지출 조회에 실패했습니다"))
		return
	}

	Success(c, gin.H{
		"categories":      balances,
		"payment_methods": methods,
		"recent_expenses": recent,
	})
}
