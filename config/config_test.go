package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)
	// 세션 기본 7일
	assert.Equal(t, 168, cfg.JWT.ExpireHours)
	assert.False(t, cfg.Email.Enabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	os.Setenv("GAGYEBU_SERVER_PORT", ":9999")
	defer os.Unsetenv("GAGYEBU_SERVER_PORT")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Port)
}

func TestSafeErrorMessage(t *testing.T) {
	fallback := "처리 중 오류가 발생했습니다"
	testErr := errors.New("internal database error")

	// nil err 는 fallback 반환
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 모드에서는 상세 오류를 숨긴다
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 모드에서는 err.Error() 반환
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig 이 nil 이면 개발 환경으로 간주
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestIsDebug(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	GlobalConfig = nil
	assert.True(t, IsDebug())

	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	assert.False(t, IsDebug())

	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.True(t, IsDebug())
}
