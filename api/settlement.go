package api

import (
	"strconv"
	"time"

	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/models"

	"github.com/gin-gonic/gin"
)

// SettlementHandler 지출 정산 처리기
type SettlementHandler struct{}

// NewSettlementHandler 정산 처리기 생성
func NewSettlementHandler() *SettlementHandler {
	return &SettlementHandler{}
}

// SettlementView 정산 항목에 수신자 입금 계좌를 붙인 뷰
type SettlementView struct {
	models.ExpenseSettlement
	ReceiverAccount *models.BankAccount `json:"receiver_account,omitempty"`
}

// List 내가 송금해야 하는 정산 목록.
// 수신자가 해당 카테고리에 등록한 수령 계좌가 있으면 함께 내려준다.
// @Summary 정산 목록 조회
// @Tags 정산
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]SettlementView} "조회 성공"
// @Router /api/v1/settlements [get]
func (h *SettlementHandler) List(c *gin.Context) {
	username := middleware.GetCurrentUsername(c)

	var settlements []models.ExpenseSettlement
	if err := database.DB.Preload("Category").
		Where("from_user = ?", username).
		Order("month DESC, category_id ASC, to_user ASC").
		Find(&settlements).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "정산 조회에 실패했습니다"))
		return
	}

	views := make([]SettlementView, 0, len(settlements))
	for _, s := range settlements {
		views = append(views, SettlementView{
			ExpenseSettlement: s,
			ReceiverAccount:   receiverAccount(s.ToUser, s.CategoryID),
		})
	}
	Success(c, views)
}

// receiverAccount 수신자의 카테고리별 수령 계좌. 등록이 없으면 프로필의 기본 계좌로 대신한다.
func receiverAccount(toUser string, categoryID uint) *models.BankAccount {
	var pref models.UserCategoryAccount
	if err := database.DB.Preload("Account").
		Where("username = ? AND category_id = ?", toUser, categoryID).
		First(&pref).Error; err == nil && pref.Account != nil {
		return pref.Account
	}

	var user models.User
	if err := database.DB.Where("username = ?", toUser).First(&user).Error; err != nil {
		return nil
	}
	if user.BankName == "" || user.AccountNumber == "" {
		return nil
	}
	return &models.BankAccount{
		BankName:      user.BankName,
		AccountNumber: user.AccountNumber,
		AccountHolder: user.Username,
	}
}

// Complete 정산 완료 토글. 송금자 본인만 바꿀 수 있다.
// @Summary 정산 완료 토글
// @Tags 정산
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "정산 ID"
// @Param request body CompletionRequest true "완료 여부"
// @Success 200 {object} Response{data=models.ExpenseSettlement} "토글 성공"
// @Failure 404 {object} Response "정산 없음"
// @Router /api/v1/settlements/{id} [put]
func (h *SettlementHandler) Complete(c *gin.Context) {
	username := middleware.GetCurrentUsername(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "completed 값이 필요합니다"))
		return
	}
	completed := *req.Completed

	var settlement models.ExpenseSettlement
	if err := database.DB.Where("id = ? AND from_user = ?", id, username).
		First(&settlement).Error; err != nil {
		NotFound(c, "정산 항목을 찾을 수 없습니다")
		return
	}

	var completedAt *time.Time
	if completed {
		now := time.Now()
		completedAt = &now
	}
	if err := database.DB.Model(&settlement).Updates(map[string]interface{}{
		"is_completed": completed,
		"completed_at": completedAt,
	}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "정산 변경에 실패했습니다"))
		return
	}

	database.DB.Preload("Category").First(&settlement, settlement.ID)
	SuccessWithMessage(c, "정산 상태가 변경되었습니다", settlement)
}
