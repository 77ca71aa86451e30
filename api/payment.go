package api

import (
	"strconv"

	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaymentHandler 결제 수단 처리기
type PaymentHandler struct{}

// NewPaymentHandler 결제 수단 처리기 생성
func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

// PaymentRequest 결제 수단 생성/수정 요청
type PaymentRequest struct {
	Name          string `json:"name" binding:"required" example:"카카오 체크카드"`
	LinkedAccount string `json:"linked_account" binding:"required" example:"카카오뱅크 3333-01-1234567"`
	IsDefault     bool   `json:"is_default" example:"true"`
}

// List 내 결제 수단 목록
// @Summary 결제 수단 목록 조회
// @Tags 결제수단
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.PaymentMethod} "조회 성공"
// @Router /api/v1/payment-methods [get]
func (h *PaymentHandler) List(c *gin.Context) {
	username := middleware.GetCurrentUsername(c)

	var methods []models.PaymentMethod
	if err := database.DB.Where("owner = ?", username).
		Order("is_default DESC, id ASC").Find(&methods).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "결제 수단 조회에 실패했습니다"))
		return
	}
	Success(c, methods)
}

// Create 결제 수단 등록. 기본으로 지정하면 기존 기본 수단은 해제된다.
// @Summary 결제 수단 등록
// @Tags 결제수단
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "결제 수단 정보"
// @Success 200 {object} Response{data=models.PaymentMethod} "등록 성공"
// @Failure 400 {object} Response "요청 오류"
// @Router /api/v1/payment-methods [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	username := middleware.GetCurrentUsername(c)

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "이름과 연결 계좌는 필수입니다"))
		return
	}

	method := models.PaymentMethod{
		Name:          req.Name,
		UserID:        userID,
		LinkedAccount: req.LinkedAccount,
		Owner:         username,
		IsDefault:     req.IsDefault,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := clearDefaultPayment(tx, username, 0); err != nil {
				return err
			}
		}
		return tx.Create(&method).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "결제 수단 등록에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "결제 수단이 등록되었습니다", method)
}

// clearDefaultPayment 소유자의 기존 기본 결제 수단 해제. exceptID 는 건너뛴다.
func clearDefaultPayment(tx *gorm.DB, owner string, exceptID uint) error {
	q := tx.Model(&models.PaymentMethod{}).Where("owner = ? AND is_default = ?", owner, true)
	if exceptID > 0 {
		q = q.Where("id != ?", exceptID)
	}
	return q.Update("is_default", false).Error
}

// Update 결제 수단 수정
// @Summary 결제 수단 수정
// @Tags 결제수단
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "결제 수단 ID"
// @Param request body PaymentRequest true "결제 수단 정보"
// @Success 200 {object} Response{data=models.PaymentMethod} "수정 성공"
// @Failure 404 {object} Response "결제 수단 없음"
// @Router /api/v1/payment-methods/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	username := middleware.GetCurrentUsername(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var method models.PaymentMethod
	if err := database.DB.Where("id = ? AND owner = ?", id, username).First(&method).Error; err != nil {
		NotFound(c, "결제 수단을 찾을 수 없습니다")
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "이름과 연결 계좌는 필수입니다"))
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := clearDefaultPayment(tx, username, method.ID); err != nil {
				return err
			}
		}
		return tx.Model(&method).Updates(map[string]interface{}{
			"name":           req.Name,
			"linked_account": req.LinkedAccount,
			"is_default":     req.IsDefault,
		}).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "결제 수단 수정에 실패했습니다"))
		return
	}

	database.DB.First(&method, method.ID)
	SuccessWithMessage(c, "결제 수단이 수정되었습니다", method)
}

// Delete 결제 수단 삭제
// @Summary 결제 수단 삭제
// @Tags 결제수단
// @Produce json
// @Security BearerAuth
// @Param id path int true "결제 수단 ID"
// @Success 200 {object} Response "삭제 성공"
// @Failure 404 {object} Response "결제 수단 없음"
// @Router /api/v1/payment-methods/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	username := middleware.GetCurrentUsername(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "잘못된 ID 입니다")
		return
	}

	var method models.PaymentMethod
	if err := database.DB.Where("id = ? AND owner = ?", id, username).First(&method).Error; err != nil {
		NotFound(c, "결제 수단을 찾을 수 없습니다")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 지출 기록의 연결만 끊는다
		if err := tx.Model(&models.Expense{}).Where("payment_method_id = ?", method.ID).
			Update("payment_method_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&method).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "결제 수단 삭제에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "결제 수단이 삭제되었습니다", nil)
}
