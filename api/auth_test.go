package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"gagyebu/config"
	"gagyebu/database"
	"gagyebu/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setupTestConfig(mode string) func() {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: mode},
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpireHours: 1,
			ExpireTime:  time.Hour,
		},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	return func() { config.GlobalConfig = nil }
}

func TestAuthHandler_DevLogin(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer setupTestConfig("debug")()

	gin.SetMode(gin.TestMode)

	// username 으로 기존 사용자 조회
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("권혁상").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kakao_id", "username", "role", "is_approved"}).
			AddRow(1, "12345", "권혁상", "user", true))

	router := gin.New()
	router.POST("/auth/dev-login", NewAuthHandler(config.GlobalConfig).DevLogin)

	body := `{"username":"권혁상"}`
	req := httptest.NewRequest("POST", "/auth/dev-login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "로그인되었습니다", resp["message"])

	// 세션 쿠키가 내려와야 한다
	cookies := w.Result().Cookies()
	found := false
	for _, ck := range cookies {
		if ck.Name == middleware.SessionCookieName && ck.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_DevLogin_CreatesDevUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer setupTestConfig("debug")()

	gin.SetMode(gin.TestMode)

	// 없는 사용자면 dev- 접두사 계정을 만든다
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("테스터").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/auth/dev-login", NewAuthHandler(config.GlobalConfig).DevLogin)

	req := httptest.NewRequest("POST", "/auth/dev-login", bytes.NewBufferString(`{"username":"테스터"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_DevLogin_ReleaseMode(t *testing.T) {
	defer setupTestConfig("release")()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/dev-login", NewAuthHandler(config.GlobalConfig).DevLogin)

	req := httptest.NewRequest("POST", "/auth/dev-login", bytes.NewBufferString(`{"username":"권혁상"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// release 모드에서는 경로 자체가 없는 것처럼 동작한다
	assert.Equal(t, 404, w.Code)
}

func TestAuthHandler_Profile(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer setupTestConfig("debug")()

	gin.SetMode(gin.TestMode)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kakao_id", "username", "is_approved"}).
			AddRow(1, "12345", "권혁상", true))

	router := gin.New()
	router.Use(setUserIDMiddleware(1, "권혁상"))
	router.GET("/profile", NewAuthHandler(config.GlobalConfig).Profile)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "권혁상")
	require.NoError(t, mock.ExpectationsWereMet())
}
