package api

import (
	"strconv"

	"gagyebu/database"
	"gagyebu/models"

	"github.com/gin-gonic/gin"
)

// AccountHandler 입금 계좌 처리기
type AccountHandler struct{}

// NewAccountHandler 계좌 처리기 생성
func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// AccountRequest 계좌 생성/수정 요청
type AccountRequest struct {
	BankName      string `json:"bank_name" binding:"required" example:"카카오뱅크"`
	AccountNumber string `json:"account_number" binding:"required" example:"3333-01-1234567"`
	AccountHolder string `json:"account_holder" binding:"required" example:"권혁상"`
	Alias         string `json:"alias" example:"생활비 통장"`
}

// List 계좌 목록
// @Summary 계좌 목록 조회
// @Tags 계좌
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.BankAccount} "조회 성공"
// @Router /api/v1/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	var accounts []models.BankAccount
	if err := database.DB.Order("id ASC").Find(&accounts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "계좌 조회에 실패했습니다"))
		return
	}
	Success(c, accounts)
}

// Create 계좌 등록
// @Summary 계좌 등록
// @Tags 계좌
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AccountRequest true "계좌 정보"
// @Success 200 {object} Response{data=models.BankAccount} "등록 성공"
// @Failure 400 {object} Response "요청 오류"
// @Router /api/v1/accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "은행명, 계좌번호, 예금주는 필수입니다"))
		return
	}

	account := models.BankAccount{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
		Alias:         req.Alias,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "계좌 등록에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "계좌가 등록되었습니다", account)
}

// Update 계좌 수정
// @Summary 계좌 수정
// @Tags 계좌
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "계좌 ID"
// @Param request body AccountRequest true "계좌 정보"
// @Success 200 {object} Response{data=models.BankAccount} "수정 성공"
// @Failure 404 {object} Response "계좌 없음"
// @Router /api/v1/accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var account models.BankAccount
	if err := database.DB.First(&account, id).Error; err != nil {
		NotFound(c, "계좌를 찾을 수 없습니다")
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "은행명, 계좌번호, 예금주는 필수입니다"))
		return
	}

	updates := map[string]interface{}{
		"bank_name":      req.BankName,
		"account_number": req.AccountNumber,
		"account_holder": req.AccountHolder,
		"alias":          req.Alias,
	}
	if err := database.DB.Model(&account).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "계좌 수정에 실패했습니다"))
		return
	}

	database.DB.First(&account, account.ID)
	SuccessWithMessage(c, "계좌가 수정되었습니다", account)
}

// Delete 계좌 삭제
// @Summary 계좌 삭제
// @Tags 계좌
// @Produce json
// @Security BearerAuth
// @Param id path int true "계좌 ID"
// @Success 200 {object} Response "삭제 성공"
// @Failure 400 {object} Response "카테고리에서 사용 중"
// @Failure 404 {object} Response "계좌 없음"
// @Router /api/v1/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var account models.BankAccount
	if err := database.DB.First(&account, id).Error; err != nil {
		NotFound(c, "계좌를 찾을 수 없습니다")
		return
	}

	// 카테고리의 입금 계좌로 연결되어 있으면 삭제할 수 없다
	var inUse int64
	database.DB.Model(&models.BudgetCategory{}).Where("account_id = ?", account.ID).Count(&inUse)
	if inUse > 0 {
		BadRequest(c, "예산 카테고리에서 사용 중인 계좌는 삭제할 수 없습니다")
		return
	}

	if err := database.DB.Delete(&account).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "계좌 삭제에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "계좌가 삭제되었습니다", nil)
}
