package api

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler_Create_Default(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	// 기본으로 지정하면 같은 소유자의 기존 기본 수단을 먼저 해제한다
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `payment_methods`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `payment_methods`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.POST("/payment-methods", NewPaymentHandler().Create)

	body := `{"name":"카카오 체크카드","linked_account":"카카오뱅크 3333-01-1234567","is_default":true}`
	req := httptest.NewRequest("POST", "/payment-methods", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentHandler_Create_NonDefault(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	// 기본이 아니면 해제 쿼리 없이 바로 저장한다
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `payment_methods`").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.POST("/payment-methods", NewPaymentHandler().Create)

	body := `{"name":"현금","linked_account":"현금"}`
	req := httptest.NewRequest("POST", "/payment-methods", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentHandler_Delete_NotOwner(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	// owner 조건이 걸려 있어 다른 사람 결제 수단은 조회되지 않는다
	mock.ExpectQuery("SELECT .* FROM `payment_methods`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setUserIDMiddleware(2, "이현경"))
	router.DELETE("/payment-methods/:id", NewPaymentHandler().Delete)

	req := httptest.NewRequest("DELETE", "/payment-methods/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
