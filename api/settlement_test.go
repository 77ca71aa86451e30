package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementHandler_Complete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	mock.ExpectQuery("SELECT .* FROM `expense_settlements`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "category_id", "from_user", "to_user", "amount"}).
			AddRow(1, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), 1, "이현경", "권혁상", "50000.00"))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expense_settlements`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 변경 후 재조회
	mock.ExpectQuery("SELECT .* FROM `expense_settlements`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "category_id", "from_user", "to_user", "amount", "is_completed"}).
			AddRow(1, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), 1, "이현경", "권혁상", "50000.00", true))
	mock.ExpectQuery("SELECT .* FROM `budget_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(1, "생활비", "living"))

	router := gin.New()
	router.Use(setUserIDMiddleware(2, "이현경"))
	router.PUT("/settlements/:id", NewSettlementHandler().Complete)

	body := `{"completed":true}`
	req := httptest.NewRequest("PUT", "/settlements/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			IsCompleted bool `json:"is_completed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.IsCompleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementHandler_Complete_NotPayer(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	// from_user 조건이 걸려 있어 송금자가 아니면 조회되지 않는다
	mock.ExpectQuery("SELECT .* FROM `expense_settlements`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.PUT("/settlements/:id", NewSettlementHandler().Complete)

	req := httptest.NewRequest("PUT", "/settlements/1", bytes.NewBufferString(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	mock.ExpectQuery("SELECT .* FROM `expense_settlements`").
		WithArgs("이현경").
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "category_id", "from_user", "to_user", "amount"}).
			AddRow(1, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), 1, "이현경", "권혁상", "50000.00"))
	// Preload Category
	mock.ExpectQuery("SELECT .* FROM `budget_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(1, "생활비", "living"))
	// 수신자의 카테고리별 수령 계좌 조회
	mock.ExpectQuery("SELECT .* FROM `user_category_accounts`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	// 등록이 없으면 프로필 기본 계좌로 대신한다
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("권혁상").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "bank_name", "account_number"}).
			AddRow(1, "권혁상", "카카오뱅크", "3333-01-1234567"))

	router := gin.New()
	router.Use(setUserIDMiddleware(2, "이현경"))
	router.GET("/settlements", NewSettlementHandler().List)

	req := httptest.NewRequest("GET", "/settlements", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			ToUser          string `json:"to_user"`
			ReceiverAccount *struct {
				BankName string `json:"bank_name"`
			} `json:"receiver_account"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "권혁상", resp.Data[0].ToUser)
	require.NotNil(t, resp.Data[0].ReceiverAccount)
	assert.Equal(t, "카카오뱅크", resp.Data[0].ReceiverAccount.BankName)
	require.NoError(t, mock.ExpectationsWereMet())
}
