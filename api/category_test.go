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

func TestCategoryHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	// 유형별 하나 제한 확인
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `budget_categories`").
		WithArgs("living").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `budget_categories`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"name":"생활비","type":"living","allocated_amount":"500000","deposit_manager":"권혁상"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_DuplicateType(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `budget_categories`").
		WithArgs("living").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"name":"생활비2","type":"living"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "이미 존재합니다")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_InvalidType(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"name":"기타","type":"misc"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "유효하지 않은 예산 유형")
}

func TestCategoryHandler_Create_SavingsClearsManager(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `budget_categories`").
		WithArgs("savings").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `budget_categories`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.POST("/categories", NewCategoryHandler().Create)

	// 저축에 담당자를 넣어도 비워진다
	body := `{"name":"저축","type":"savings","deposit_manager":"권혁상"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			DepositManager string `json:"deposit_manager"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.Data.DepositManager)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_List_SortOrder(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)

	mock.ExpectQuery("SELECT .* FROM `budget_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(1, "저축", "savings").
			AddRow(2, "경조사비", "event").
			AddRow(3, "생활비", "living").
			AddRow(4, "문화/여행비", "cultural"))

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.GET("/categories", NewCategoryHandler().List)

	req := httptest.NewRequest("GET", "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			Type string `json:"type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 4)
	assert.Equal(t, "living", resp.Data[0].Type)
	assert.Equal(t, "cultural", resp.Data[1].Type)
	assert.Equal(t, "event", resp.Data[2].Type)
	assert.Equal(t, "savings", resp.Data[3].Type)
}
