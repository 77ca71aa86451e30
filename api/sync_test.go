package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncHandler_Sync(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	// local_id 저널에 없음
	mock.ExpectQuery("SELECT .* FROM `pending_expenses`").
		WithArgs("local-abc").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `pending_expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.POST("/sync", NewSyncHandler().Sync)

	body := `{"local_id":"local-abc","description":"편의점","amount":"4500","date":"2024-12-15"}`
	req := httptest.NewRequest("POST", "/sync", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			AlreadySynced bool `json:"already_synced"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.AlreadySynced)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncHandler_Sync_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	// 같은 local_id 가 이미 동기화된 경우 중복 생성 없이 응답한다
	mock.ExpectQuery("SELECT .* FROM `pending_expenses`").
		WithArgs("local-abc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "local_id", "user_id"}).
			AddRow(1, "local-abc", 1))

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.POST("/sync", NewSyncHandler().Sync)

	body := `{"local_id":"local-abc","description":"편의점","amount":"4500","date":"2024-12-15"}`
	req := httptest.NewRequest("POST", "/sync", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			AlreadySynced bool `json:"already_synced"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.AlreadySynced)
	require.NoError(t, mock.ExpectationsWereMet())
}
