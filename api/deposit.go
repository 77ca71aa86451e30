package api

import (
	"log"
	"strconv"
	"time"

	"gagyebu/config"
	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/models"
	"gagyebu/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DepositHandler 월 정산 입금 사이클 처리기
type DepositHandler struct {
	clock service.Clock
}

// NewDepositHandler 입금 처리기 생성
func NewDepositHandler() *DepositHandler {
	return &DepositHandler{clock: service.DefaultClock}
}

// NewDepositHandlerWithClock 테스트에서 날짜를 고정하기 위한 생성자
func NewDepositHandlerWithClock(clock service.Clock) *DepositHandler {
	return &DepositHandler{clock: clock}
}

// CreateDepositRequest 입금 사이클 생성 요청
type CreateDepositRequest struct {
	Salary    decimal.Decimal  `json:"salary" binding:"required" example:"3000000"`
	Deduction *decimal.Decimal `json:"deduction" example:"500000"` // 비우면 사용자의 기본 차감액
}

// UpdateSalaryRequest 월급 수정 요청
type UpdateSalaryRequest struct {
	Salary    decimal.Decimal `json:"salary" binding:"required" example:"3200000"`
	Deduction decimal.Decimal `json:"deduction" example:"500000"`
}

// CompletionRequest 완료 플래그 토글 요청
type CompletionRequest struct {
	Completed *bool `json:"completed" binding:"required" example:"true"`
}

// savingsAmount 저축액 = max(0, 월급 - 차감액)
func savingsAmount(salary, deduction decimal.Decimal) decimal.Decimal {
	savings := salary.Sub(deduction)
	if savings.IsNegative() {
		return decimal.Zero
	}
	return savings
}

// GetCycle 대상월(지난달) 입금 사이클 조회
// @Summary 입금 사이클 조회
// @Description 대상월의 내 입금 레코드와 책임 카테고리, 전체 완료 여부를 내려준다
// @Tags 입금
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "조회 성공"
// @Router /api/v1/deposits/cycle [get]
func (h *DepositHandler) GetCycle(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	username := middleware.GetCurrentUsername(c)
	targetMonth := service.TargetMonthStart(h.clock)

	var categories []models.BudgetCategory
	if err := database.DB.Preload("Account").Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "카테고리 조회에 실패했습니다"))
		return
	}
	responsible := models.ResponsibleCategories(username, categories)

	var deposit *models.MonthlyDeposit
	var found models.MonthlyDeposit
	err := database.DB.Preload("Items").Preload("Items.Category").
		Where("user_id = ? AND month = ?", userID, targetMonth).
		First(&found).Error
	if err == nil {
		deposit = &found
	}

	allCompleted, err := service.AllDepositsCompleted(database.DB, targetMonth)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "입금 상태 조회에 실패했습니다"))
		return
	}

	var settlementCount int64
	database.DB.Model(&models.ExpenseSettlement{}).Where("month = ?", targetMonth).Count(&settlementCount)

	Success(c, gin.H{
		"month":                  targetMonth.Format("2006-01-02"),
		"month_label":            service.TargetMonthLabel(h.clock),
		"deposit":                deposit,
		"responsible_categories": responsible,
		"all_completed":          allCompleted,
		"settlements_generated":  settlementCount > 0,
	})
}

// Create 대상월 입금 사이클 생성
// @Summary 입금 사이클 생성
// @Description 월급과 차감액으로 저축액을 계산하고 책임 카테고리별 입금 항목을 만든다. 같은 달에 이미 있으면 400.
// @Tags 입금
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDepositRequest true "월급/차감액"
// @Success 200 {object} Response{data=models.MonthlyDeposit} "생성 성공"
// @Failure 400 {object} Response "이미 존재하거나 요청 오류"
// @Router /api/v1/deposits [post]
func (h *DepositHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	targetMonth := service.TargetMonthStart(h.clock)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		Unauthorized(c, "사용자를 찾을 수 없습니다")
		return
	}

	var req CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "월급은 필수입니다"))
		return
	}
	if !req.Salary.IsPositive() {
		BadRequest(c, "월급은 0보다 커야 합니다")
		return
	}
	deduction := user.DefaultDeduction
	if req.Deduction != nil {
		deduction = *req.Deduction
	}
	if deduction.IsNegative() {
		BadRequest(c, "차감액은 음수일 수 없습니다")
		return
	}

	// (user, month) 중복이면 기존 사이클을 건드리지 않고 거절한다
	var existing int64
	if err := database.DB.Model(&models.MonthlyDeposit{}).
		Where("user_id = ? AND month = ?", userID, targetMonth).
		Count(&existing).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "입금 조회에 실패했습니다"))
		return
	}
	if existing > 0 {
		BadRequest(c, service.TargetMonthLabel(h.clock)+" 입금은 이미 생성되었습니다")
		return
	}

	var categories []models.BudgetCategory
	if err := database.DB.Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "카테고리 조회에 실패했습니다"))
		return
	}
	responsible := models.ResponsibleCategories(user.Username, categories)
	if len(responsible) == 0 {
		BadRequest(c, "입금할 책임 카테고리가 없습니다. 카테고리를 먼저 설정해주세요")
		return
	}

	savings := savingsAmount(req.Salary, deduction)

	// 저축 제외 책임 카테고리 배정액 합계
	totalBudget := decimal.Zero
	for _, cat := range responsible {
		if !cat.IsSavings() {
			totalBudget = totalBudget.Add(cat.AllocatedAmount)
		}
	}

	deposit := models.MonthlyDeposit{
		UserID:        userID,
		Month:         targetMonth,
		Salary:        req.Salary,
		TotalBudget:   totalBudget,
		SavingsAmount: savings,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&deposit).Error; err != nil {
			return err
		}
		items := make([]models.DepositItem, 0, len(responsible))
		for _, cat := range responsible {
			amount := cat.AllocatedAmount
			if cat.IsSavings() {
				amount = savings
			}
			items = append(items, models.DepositItem{
				DepositID:  deposit.ID,
				CategoryID: cat.ID,
				Amount:     amount,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "입금 생성에 실패했습니다"))
		return
	}

	database.DB.Preload("Items").Preload("Items.Category").First(&deposit, deposit.ID)
	SuccessWithMessage(c, "입금 사이클이 생성되었습니다", deposit)
}

// CompleteItem 입금 항목 완료 토글. 마지막 항목이 완료되면 입금 전체가 완료되고,
// 모든 사용자의 입금이 끝났으면 대상월 정산을 생성한다.
// @Summary 입금 항목 완료 토글
// @Tags 입금
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "입금 항목 ID"
// @Param request body CompletionRequest true "완료 여부"
// @Success 200 {object} Response "토글 성공"
// @Failure 404 {object} Response "항목 없음"
// @Router /api/v1/deposits/items/{id} [put]
func (h *DepositHandler) CompleteItem(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
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

	var item models.DepositItem
	if err := database.DB.Preload("Deposit").First(&item, id).Error; err != nil {
		NotFound(c, "입금 항목을 찾을 수 없습니다")
		return
	}
	if item.Deposit == nil || item.Deposit.UserID != userID {
		NotFound(c, "본인의 입금 항목만 변경할 수 있습니다")
		return
	}
	deposit := item.Deposit

	justCompleted := false
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var completedAt *time.Time
		if completed {
			now := time.Now()
			completedAt = &now
		}
		if err := tx.Model(&item).Updates(map[string]interface{}{
			"is_completed": completed,
			"completed_at": completedAt,
		}).Error; err != nil {
			return err
		}

		// 토글 후 최신 항목 집합으로 전체 완료 여부를 다시 판정한다
		var items []models.DepositItem
		if err := tx.Where("deposit_id = ?", deposit.ID).Find(&items).Error; err != nil {
			return err
		}
		allDone := len(items) > 0
		for _, it := range items {
			if !it.IsCompleted {
				allDone = false
				break
			}
		}

		if allDone != deposit.IsCompleted {
			var depositedAt *time.Time
			if allDone {
				now := time.Now()
				depositedAt = &now
			}
			if err := tx.Model(&models.MonthlyDeposit{}).Where("id = ?", deposit.ID).
				Updates(map[string]interface{}{
					"is_completed": allDone,
					"deposited_at": depositedAt,
				}).Error; err != nil {
				return err
			}
			justCompleted = allDone
		}
		return nil
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "입금 항목 변경에 실패했습니다"))
		return
	}

	// 방금 입금이 끝났고 다른 사용자들의 입금도 전부 끝났으면 정산을 생성한다
	generated := false
	if justCompleted {
		allCompleted, err := service.AllDepositsCompleted(database.DB, deposit.Month)
		if err != nil {
			InternalError(c, SafeErrorMessage(err, "입금 상태 조회에 실패했습니다"))
			return
		}
		if allCompleted {
			created, err := service.GenerateExpenseSettlements(database.DB, deposit.Month)
			if err != nil {
				InternalError(c, SafeErrorMessage(err, "정산 생성에 실패했습니다"))
				return
			}
			generated = len(created) > 0
			if generated {
				notifySettlements(deposit.Month, created)
			}
		}
	}

	var after models.MonthlyDeposit
	database.DB.First(&after, deposit.ID)
	Success(c, gin.H{
		"completed":             completed,
		"deposit_completed":     after.IsCompleted,
		"settlements_generated": generated,
	})
}

// notifySettlements 정산 생성 알림 메일. 실패해도 정산 자체에는 영향이 없으므로 로그만 남긴다.
func notifySettlements(month time.Time, settlements []models.ExpenseSettlement) {
	cfg := config.GlobalConfig
	if cfg == nil || !cfg.Email.Enabled {
		return
	}

	monthLabel := month.Format("2006년 1월")

	// 송금자별로 묶어서 한 통씩 보낸다
	byFrom := make(map[string][]models.ExpenseSettlement)
	for _, s := range settlements {
		byFrom[s.FromUser] = append(byFrom[s.FromUser], s)
	}

	emailService := service.NewEmailService(&cfg.Email)
	for fromUser, items := range byFrom {
		var user models.User
		if err := database.DB.Where("username = ?", fromUser).First(&user).Error; err != nil {
			continue
		}
		go func(email, username string, items []models.ExpenseSettlement) {
			if err := emailService.SendSettlementNotice(email, username, monthLabel, items); err != nil {
				log.Printf("정산 알림 메일 발송 실패 (%s): %v", username, err)
			}
		}(user.Email, user.Username, items)
	}
}

// UpdateSalary 월급/차감액 수정. 저축액을 다시 계산해 저축 항목에만 반영한다.
// @Summary 월급 수정
// @Tags 입금
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "입금 ID"
// @Param request body UpdateSalaryRequest true "월급/차감액"
// @Success 200 {object} Response{data=models.MonthlyDeposit} "수정 성공"
// @Failure 404 {object} Response "입금 없음"
// @Router /api/v1/deposits/{id}/salary [put]
func (h *DepositHandler) UpdateSalary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var deposit models.MonthlyDeposit
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&deposit).Error; err != nil {
		NotFound(c, "입금 레코드를 찾을 수 없습니다")
		return
	}

	var req UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "월급은 필수입니다"))
		return
	}
	if !req.Salary.IsPositive() {
		BadRequest(c, "월급은 0보다 커야 합니다")
		return
	}
	if req.Deduction.IsNegative() {
		BadRequest(c, "차감액은 음수일 수 없습니다")
		return
	}

	savings := savingsAmount(req.Salary, req.Deduction)

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&deposit).Updates(map[string]interface{}{
			"salary":         req.Salary,
			"savings_amount": savings,
		}).Error; err != nil {
			return err
		}
		// 저축 항목만 새 금액으로 바꾸고 나머지 항목은 건드리지 않는다
		return tx.Model(&models.DepositItem{}).
			Where("deposit_id = ? AND category_id IN (?)", deposit.ID,
				tx.Model(&models.BudgetCategory{}).Select("id").Where("type = ?", models.BudgetTypeSavings)).
			Update("amount", savings).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "월급 수정에 실패했습니다"))
		return
	}

	database.DB.Preload("Items").Preload("Items.Category").First(&deposit, deposit.ID)
	SuccessWithMessage(c, "월급이 수정되었습니다", deposit)
}

// Reset 입금 사이클 초기화. 본인 입금만 가능하며 해당 월 정산도 함께 삭제된다.
// @Summary 입금 사이클 초기화
// @Tags 입금
// @Produce json
// @Security BearerAuth
// @Param id path int true "입금 ID"
// @Success 200 {object} Response "초기화 성공"
// @Failure 404 {object} Response "입금 없음"
// @Router /api/v1/deposits/{id} [delete]
func (h *DepositHandler) Reset(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var deposit models.MonthlyDeposit
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&deposit).Error; err != nil {
		NotFound(c, "입금 레코드를 찾을 수 없습니다")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 정산 생성의 되돌리기: 해당 월 정산을 먼저 지운다
		if err := tx.Where("month = ?", deposit.Month).
			Delete(&models.ExpenseSettlement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("deposit_id = ?", deposit.ID).
			Delete(&models.DepositItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&deposit).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "입금 초기화에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "입금 사이클이 초기화되었습니다", nil)
}
