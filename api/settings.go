package api

import (
	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// SettingsHandler 사용자 설정 처리기
type SettingsHandler struct{}

// NewSettingsHandler 설정 처리기 생성
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// UpdateDeductionRequest 기본 차감액 수정 요청
type UpdateDeductionRequest struct {
	DefaultDeduction decimal.Decimal `json:"default_deduction" example:"500000"`
	BankName         string          `json:"bank_name" example:"카카오뱅크"`
	AccountNumber    string          `json:"account_number" example:"3333-01-1234567"`
}

// CategoryAccountRequest 카테고리별 수령 계좌 등록 요청
type CategoryAccountRequest struct {
	CategoryID uint `json:"category_id" binding:"required" example:"1"`
	AccountID  uint `json:"account_id" binding:"required" example:"1"`
}

// UpdateProfile 기본 차감액과 정산 수령 기본 계좌 수정
// @Summary 내 설정 수정
// @Tags 설정
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateDeductionRequest true "설정 값"
// @Success 200 {object} Response{data=models.User} "수정 성공"
// @Failure 400 {object} Response "요청 오류"
// @Router /api/v1/settings/profile [put]
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req UpdateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "요청 파라미터 오류"))
		return
	}
	if req.DefaultDeduction.IsNegative() {
		BadRequest(c, "차감액은 음수일 수 없습니다")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		Unauthorized(c, "사용자를 찾을 수 없습니다")
		return
	}

	if err := database.DB.Model(&user).Updates(map[string]interface{}{
		"default_deduction": req.DefaultDeduction,
		"bank_name":         req.BankName,
		"account_number":    req.AccountNumber,
	}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "설정 수정에 실패했습니다"))
		return
	}

	database.DB.First(&user, user.ID)
	SuccessWithMessage(c, "설정이 수정되었습니다", user)
}

// UpsertCategoryAccount 카테고리별 수령 계좌 upsert. (username, category) 조합당 하나만 유지된다.
// @Summary 카테고리 수령 계좌 등록
// @Tags 설정
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryAccountRequest true "카테고리/계좌"
// @Success 200 {object} Response{data=models.UserCategoryAccount} "등록 성공"
// @Failure 400 {object} Response "요청 오류"
// @Router /api/v1/settings/category-accounts [put]
func (h *SettingsHandler) UpsertCategoryAccount(c *gin.Context) {
	username := middleware.GetCurrentUsername(c)

	var req CategoryAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "카테고리와 계좌는 필수입니다"))
		return
	}

	var category models.BudgetCategory
	if err := database.DB.First(&category, req.CategoryID).Error; err != nil {
		BadRequest(c, "존재하지 않는 카테고리입니다")
		return
	}
	var account models.BankAccount
	if err := database.DB.First(&account, req.AccountID).Error; err != nil {
		BadRequest(c, "존재하지 않는 계좌입니다")
		return
	}

	pref := models.UserCategoryAccount{
		Username:   username,
		CategoryID: req.CategoryID,
		AccountID:  req.AccountID,
	}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "category_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"account_id", "updated_at"}),
	}).Create(&pref).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "수령 계좌 등록에 실패했습니다"))
		return
	}

	database.DB.Preload("Category").Preload("Account").
		Where("username = ? AND category_id = ?", username, req.CategoryID).
		First(&pref)
	SuccessWithMessage(c, "수령 계좌가 등록되었습니다", pref)
}

// ListCategoryAccounts 내 카테고리별 수령 계좌 목록
// @Summary 카테고리 수령 계좌 목록
// @Tags 설정
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.UserCategoryAccount} "조회 성공"
// @Router /api/v1/settings/category-accounts [get]
func (h *SettingsHandler) ListCategoryAccounts(c *gin.Context) {
	username := middleware.GetCurrentUsername(c)

	var prefs []models.UserCategoryAccount
	if err := database.DB.Preload("Category").Preload("Account").
		Where("username = ?", username).
		Order("category_id ASC").
		Find(&prefs).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "수령 계좌 조회에 실패했습니다"))
		return
	}
	Success(c, prefs)
}
