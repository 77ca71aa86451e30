package api

import (
	"time"

	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SyncHandler 오프라인(PWA) 지출 동기화 처리기
type SyncHandler struct{}

// NewSyncHandler 동기화 처리기 생성
func NewSyncHandler() *SyncHandler {
	return &SyncHandler{}
}

// SyncExpenseRequest 오프라인 지출 동기화 요청
type SyncExpenseRequest struct {
	LocalID         string          `json:"local_id" binding:"required" example:"9f8a1c2e-offline"`
	Description     string          `json:"description" binding:"required" example:"편의점"`
	Amount          decimal.Decimal `json:"amount" binding:"required" example:"4500"`
	Date            string          `json:"date" binding:"required" example:"2024-12-15"`
	CategoryID      *uint           `json:"category_id" example:"1"`
	PaymentMethodID *uint           `json:"payment_method_id" example:"1"`
}

// Sync 오프라인에서 쌓인 지출 한 건을 서버 장부에 반영한다.
// local_id 가 이미 동기화된 적이 있으면 중복 생성 없이 already_synced 로 응답한다.
// @Summary 오프라인 지출 동기화
// @Tags 동기화
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SyncExpenseRequest true "오프라인 지출"
// @Success 200 {object} Response "동기화 성공 또는 이미 동기화됨"
// @Failure 400 {object} Response "요청 오류"
// @Router /api/v1/sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SyncExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "local_id, 내용, 금액, 날짜는 필수입니다"))
		return
	}
	if !req.Amount.IsPositive() {
		BadRequest(c, "금액은 0보다 커야 합니다")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, "날짜 형식이 올바르지 않습니다 (예: 2024-12-15)")
		return
	}

	// local_id 저널에 이미 있으면 재전송이다
	var existing models.PendingExpense
	if err := database.DB.Where("local_id = ?", req.LocalID).First(&existing).Error; err == nil {
		Success(c, gin.H{
			"already_synced": true,
			"local_id":       req.LocalID,
		})
		return
	}

	if msg := validateExpenseRefs(req.CategoryID, req.PaymentMethodID); msg != "" {
		BadRequest(c, msg)
		return
	}

	var expense models.Expense
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		journal := models.PendingExpense{
			LocalID:         req.LocalID,
			UserID:          userID,
			Description:     req.Description,
			Amount:          req.Amount,
			Date:            date,
			CategoryID:      req.CategoryID,
			PaymentMethodID: req.PaymentMethodID,
			SyncedAt:        &now,
		}
		if err := tx.Create(&journal).Error; err != nil {
			return err
		}

		expense = models.Expense{
			Description:     req.Description,
			Amount:          req.Amount,
			Date:            date,
			UserID:          userID,
			CategoryID:      req.CategoryID,
			PaymentMethodID: req.PaymentMethodID,
			IsOfflineSync:   true,
		}
		return tx.Create(&expense).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "동기화에 실패했습니다"))
		return
	}

	SuccessWithMessage(c, "동기화되었습니다", gin.H{
		"already_synced": false,
		"local_id":       req.LocalID,
		"expense":        expense,
	})
}

// Status 동기화 현황
// @Summary 동기화 현황 조회
// @Tags 동기화
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "조회 성공"
// @Router /api/v1/sync [get]
func (h *SyncHandler) Status(c *gin.Context) {
	var total, offline int64
	if err := database.DB.Model(&models.Expense{}).Count(&total).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "동기화 현황 조회에 실패했습니다"))
		return
	}
	database.DB.Model(&models.Expense{}).Where("is_offline_sync = ?", true).Count(&offline)

	Success(c, gin.H{
		"total_expenses": total,
		"offline_synced": offline,
	})
}
