package api

import (
	"sort"
	"strconv"

	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/models"
	"gagyebu/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryHandler 예산 카테고리 처리기
type CategoryHandler struct{}

// NewCategoryHandler 카테고리 처리기 생성
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryRequest 카테고리 생성/수정 요청
type CategoryRequest struct {
	Name            string          `json:"name" binding:"required" example:"생활비"`
	Type            string          `json:"type" binding:"required" example:"living"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount" example:"500000"`
	InitialBalance  decimal.Decimal `json:"initial_balance" example:"0"`
	AccountID       *uint           `json:"account_id" example:"1"`
	DepositManager  string          `json:"deposit_manager" example:"권혁상"`
}

// List 카테고리 목록 (표시 순서 고정)
// @Summary 카테고리 목록 조회
// @Tags 카테고리
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.BudgetCategory} "조회 성공"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.BudgetCategory
	if err := database.DB.Preload("Account").Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "카테고리 조회에 실패했습니다"))
		return
	}
	sortCategories(categories)
	Success(c, categories)
}

func sortCategories(categories []models.BudgetCategory) {
	// 생활비 → 문화/여행비 → 경조사비 → 저축
	sort.SliceStable(categories, func(i, j int) bool {
		return models.BudgetTypeOrder(categories[i].Type) < models.BudgetTypeOrder(categories[j].Type)
	})
}

// Balances 카테고리별 잔액 뷰
// @Summary 카테고리 잔액 조회
// @Description 잔액 = 초기 잔액 + 완료된 입금 누계 - 지출 누계. 이번 달 지출도 함께 내려준다.
// @Tags 카테고리
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]service.CategoryBalance} "조회 성공"
// @Router /api/v1/categories/balances [get]
func (h *CategoryHandler) Balances(c *gin.Context) {
	balances, err := service.CategoryBalances(database.DB, service.DefaultClock)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "잔액 계산에 실패했습니다"))
		return
	}
	Success(c, balances)
}

// Create 카테고리 생성. 공유 예산에는 유형별로 하나만 둘 수 있다.
// @Summary 카테고리 생성
// @Tags 카테고리
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "카테고리 정보"
// @Success 200 {object} Response{data=models.BudgetCategory} "생성 성공"
// @Failure 400 {object} Response "유형 오류 또는 중복"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "이름과 유형은 필수입니다"))
		return
	}
	if !models.IsValidBudgetType(req.Type) {
		BadRequest(c, "유효하지 않은 예산 유형입니다 (event, cultural, savings, living)")
		return
	}

	// 유형별 하나 제한
	var count int64
	if err := database.DB.Model(&models.BudgetCategory{}).Where("type = ?", req.Type).Count(&count).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "카테고리 조회에 실패했습니다"))
		return
	}
	if count > 0 {
		BadRequest(c, models.BudgetTypeLabels[req.Type]+" 카테고리는 이미 존재합니다")
		return
	}

	// 저축은 담당자 없이 모두가 입금한다
	manager := req.DepositManager
	if req.Type == models.BudgetTypeSavings {
		manager = ""
	}

	category := models.BudgetCategory{
		Name:            req.Name,
		Type:            req.Type,
		AllocatedAmount: req.AllocatedAmount,
		InitialBalance:  req.InitialBalance,
		UserID:          &userID,
		AccountID:       req.AccountID,
		DepositManager:  manager,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "카테고리 생성에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "카테고리가 생성되었습니다", category)
}

// Update 카테고리 수정
// @Summary 카테고리 수정
// @Tags 카테고리
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "카테고리 ID"
// @Param request body CategoryRequest true "카테고리 정보"
// @Success 200 {object} Response{data=models.BudgetCategory} "수정 성공"
// @Failure 404 {object} Response "카테고리 없음"
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var category models.BudgetCategory
	if err := database.DB.First(&category, id).Error; err != nil {
		NotFound(c, "카테고리를 찾을 수 없습니다")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "이름과 유형은 필수입니다"))
		return
	}
	if !models.IsValidBudgetType(req.Type) {
		BadRequest(c, "유효하지 않은 예산 유형입니다 (event, cultural, savings, living)")
		return
	}

	// 유형을 바꾸는 경우에도 유형별 하나 제한을 지킨다
	if req.Type != category.Type {
		var count int64
		database.DB.Model(&models.BudgetCategory{}).Where("type = ? AND id != ?", req.Type, category.ID).Count(&count)
		if count > 0 {
			BadRequest(c, models.BudgetTypeLabels[req.Type]+" 카테고리는 이미 존재합니다")
			return
		}
	}

	manager := req.DepositManager
	if req.Type == models.BudgetTypeSavings {
		manager = ""
	}

	updates := map[string]interface{}{
		"name":             req.Name,
		"type":             req.Type,
		"allocated_amount": req.AllocatedAmount,
		"initial_balance":  req.InitialBalance,
		"account_id":       req.AccountID,
		"deposit_manager":  manager,
	}
	if err := database.DB.Model(&category).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "카테고리 수정에 실패했습니다"))
		return
	}

	database.DB.Preload("Account").First(&category, category.ID)
	SuccessWithMessage(c, "카테고리가 수정되었습니다", category)
}

// Delete 카테고리 삭제. 연결된 지출은 카테고리 없음으로 남는다.
// @Summary 카테고리 삭제
// @Tags 카테고리
// @Produce json
// @Security BearerAuth
// @Param id path int true "카테고리 ID"
// @Success 200 {object} Response "삭제 성공"
// @Failure 404 {object} Response "카테고리 없음"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var category models.BudgetCategory
	if err := database.DB.First(&category, id).Error; err != nil {
		NotFound(c, "카테고리를 찾을 수 없습니다")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 지출 기록은 남기고 연결만 끊는다
		if err := tx.Model(&models.Expense{}).Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "카테고리 삭제에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "카테고리가 삭제되었습니다", nil)
}
