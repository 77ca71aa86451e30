package api

import (
	"strconv"
	"time"

	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseHandler 지출 기록 처리기
type ExpenseHandler struct{}

// NewExpenseHandler 지출 기록 처리기 생성
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest 지출 생성 요청
type CreateExpenseRequest struct {
	Description     string          `json:"description" binding:"required" example:"장보기"`
	Amount          decimal.Decimal `json:"amount" binding:"required" example:"35000"`
	Date            string          `json:"date" binding:"required" example:"2024-12-15"`
	CategoryID      *uint           `json:"category_id" example:"1"`
	PaymentMethodID *uint           `json:"payment_method_id" example:"1"`
}

// UpdateExpenseRequest 지출 수정 요청
type UpdateExpenseRequest struct {
	Description     string           `json:"description" example:"장보기"`
	Amount          *decimal.Decimal `json:"amount" example:"35000"`
	Date            string           `json:"date" example:"2024-12-15"`
	CategoryID      *uint            `json:"category_id" example:"1"`
	PaymentMethodID *uint            `json:"payment_method_id" example:"1"`
}

// ExpenseListRequest 지출 목록 요청
type ExpenseListRequest struct {
	Page       int    `form:"page" example:"1"`
	PageSize   int    `form:"page_size" example:"20"`
	CategoryID uint   `form:"category_id" example:"1"`
	Username   string `form:"username" example:"권혁상"`
	StartDate  string `form:"start_date" example:"2024-12-01"`
	EndDate    string `form:"end_date" example:"2024-12-31"`
}

// parseDate 지출 날짜 파싱 (YYYY-MM-DD)
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// validateExpenseRefs 참조하는 카테고리/결제 수단이 실제로 존재하는지 확인
func validateExpenseRefs(categoryID, paymentMethodID *uint) string {
	if categoryID != nil {
		var cat models.BudgetCategory
		if err := database.DB.First(&cat, *categoryID).Error; err != nil {
			return "존재하지 않는 카테고리입니다"
		}
	}
	if paymentMethodID != nil {
		var pm models.PaymentMethod
		if err := database.DB.First(&pm, *paymentMethodID).Error; err != nil {
			return "존재하지 않는 결제 수단입니다"
		}
	}
	return ""
}

// Create 지출 기록 생성
// @Summary 지출 생성
// @Tags 지출
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "지출 정보"
// @Success 200 {object} Response{data=models.Expense} "생성 성공"
// @Failure 400 {object} Response "요청 오류"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "내용, 금액, 날짜는 필수입니다"))
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
	if msg := validateExpenseRefs(req.CategoryID, req.PaymentMethodID); msg != "" {
		BadRequest(c, msg)
		return
	}

	expense := models.Expense{
		Description:     req.Description,
		Amount:          req.Amount,
		Date:            date,
		UserID:          userID,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "지출 생성에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "지출이 기록되었습니다", expense)
}

// List 지출 목록. 가족이 함께 쓰는 장부라 모든 사용자의 기록이 보인다.
// @Summary 지출 목록 조회
// @Tags 지출
// @Produce json
// @Security BearerAuth
// @Param page query int false "페이지" default(1)
// @Param page_size query int false "페이지 크기" default(20)
// @Param category_id query int false "카테고리 필터"
// @Param username query string false "지출자 필터"
// @Param start_date query string false "시작일 (2024-12-01)"
// @Param end_date query string false "종료일 (2024-12-31)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Expense}} "조회 성공"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "요청 파라미터 오류"))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Expense{})

	if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}
	if req.Username != "" {
		query = query.Where("user_id IN (?)",
			database.DB.Model(&models.User{}).Select("id").Where("username = ?", req.Username))
	}
	if req.StartDate != "" {
		if start, err := parseDate(req.StartDate); err == nil {
			query = query.Where("date >= ?", start)
		}
	}
	if req.EndDate != "" {
		if end, err := parseDate(req.EndDate); err == nil {
			query = query.Where("date <= ?", end)
		}
	}

	var total int64
	query.Count(&total)

	var expenses []models.Expense
	offset := (req.Page - 1) * req.PageSize
	if err := query.Preload("User").Preload("Category").Preload("PaymentMethod").
		Order("date DESC, created_at DESC").
		Offset(offset).Limit(req.PageSize).
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "지출 조회에 실패했습니다"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     expenses,
	})
}

// Get 지출 단건 조회
// @Summary 지출 단건 조회
// @Tags 지출
// @Produce json
// @Security BearerAuth
// @Param id path int true "지출 ID"
// @Success 200 {object} Response{data=models.Expense} "조회 성공"
// @Failure 404 {object} Response "기록 없음"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var expense models.Expense
	if err := database.DB.Preload("User").Preload("Category").Preload("PaymentMethod").
		First(&expense, id).Error; err != nil {
		NotFound(c, "지출 기록을 찾을 수 없습니다")
		return
	}
	Success(c, expense)
}

// Update 지출 수정. 공유 장부라 다른 사용자의 기록도 수정할 수 있다.
// @Summary 지출 수정
// @Tags 지출
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "지출 ID"
// @Param request body UpdateExpenseRequest true "지출 정보"
// @Success 200 {object} Response{data=models.Expense} "수정 성공"
// @Failure 404 {object} Response "기록 없음"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "지출 기록을 찾을 수 없습니다")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "요청 파라미터 오류"))
		return
	}

	updates := make(map[string]interface{})
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			BadRequest(c, "금액은 0보다 커야 합니다")
			return
		}
		updates["amount"] = *req.Amount
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			BadRequest(c, "날짜 형식이 올바르지 않습니다 (예: 2024-12-15)")
			return
		}
		updates["date"] = date
	}
	if req.CategoryID != nil {
		if msg := validateExpenseRefs(req.CategoryID, nil); msg != "" {
			BadRequest(c, msg)
			return
		}
		updates["category_id"] = req.CategoryID
	}
	if req.PaymentMethodID != nil {
		if msg := validateExpenseRefs(nil, req.PaymentMethodID); msg != "" {
			BadRequest(c, msg)
			return
		}
		updates["payment_method_id"] = req.PaymentMethodID
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "지출 수정에 실패했습니다"))
			return
		}
	}

	database.DB.Preload("User").Preload("Category").Preload("PaymentMethod").First(&expense, expense.ID)
	SuccessWithMessage(c, "지출이 수정되었습니다", expense)
}

// Delete 지출 삭제
// @Summary 지출 삭제
// @Tags 지출
// @Produce json
// @Security BearerAuth
// @Param id path int true "지출 ID"
// @Success 200 {object} Response "삭제 성공"
// @Failure 404 {object} Response "기록 없음"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "지출 기록을 찾을 수 없습니다")
		return
	}

	if err := database.DB.Delete(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "지출 삭제에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "지출이 삭제되었습니다", nil)
}
