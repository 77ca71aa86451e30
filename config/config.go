package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 앱 전체 설정
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Kakao    KakaoConfig    `mapstructure:"kakao"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig 데이터베이스 설정
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// JWTConfig 세션 토큰 설정
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// KakaoConfig 카카오 로그인 설정
type KakaoConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
}

// EmailConfig 정산 알림 메일 설정
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

var (
	// GlobalConfig 전역 설정 인스턴스
	GlobalConfig *Config
)

// LoadConfig 설정 로드
// 우선순위: 환경변수 > 외부 설정 파일 > 내장 기본 설정
// configPath: 외부 설정 파일 경로(선택)
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 내장 기본 설정 로드
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("내장 설정을 읽을 수 없습니다: %w", err)
	}

	// 2. 외부 설정 파일 병합(선택)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("경고: 지정한 설정 파일을 읽을 수 없습니다 %s: %v", configPath, err)
		} else {
			log.Printf("외부 설정 파일 병합 완료: %s", configPath)
		}
	} else {
		external := viper.New()
		external.SetConfigName("config")
		external.SetConfigType("yaml")
		external.AddConfigPath(".")
		external.AddConfigPath("./config")
		external.AddConfigPath("/etc/gagyebu")
		external.AddConfigPath("$HOME/.gagyebu")

		if err := external.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(external.AllSettings()); err != nil {
				log.Printf("경고: 외부 설정 병합 실패: %v", err)
			} else {
				log.Printf("외부 설정 파일 병합 완료: %s", external.ConfigFileUsed())
			}
		}
	}

	// 3. 환경변수 오버라이드 (GAGYEBU_SERVER_PORT 등)
	v.SetEnvPrefix("GAGYEBU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}

	if cfg.JWT.ExpireHours <= 0 {
		// 원본 서비스와 동일하게 세션은 7일 유지
		cfg.JWT.ExpireHours = 24 * 7
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	GlobalConfig = &cfg
	return &cfg, nil
}

// MustLoadConfig 설정 로드, 실패 시 panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("설정 로드 실패: %v", err))
	}
	return cfg
}

// GetConfig 전역 설정 반환
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("설정이 초기화되지 않았습니다. LoadConfig를 먼저 호출하세요")
	}
	return GlobalConfig
}

// IsDebug debug 모드 여부 (dev 로그인 허용 판단에 사용)
func IsDebug() bool {
	return GlobalConfig == nil || GlobalConfig.Server.Mode != "release"
}

// SafeErrorMessage release 모드에서는 내부 오류를 클라이언트에 노출하지 않는다
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig 현재 설정 출력(민감 정보 제외)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("현재 설정:")
	log.Printf("  서버: %s (모드: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  데이터베이스: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  카카오 로그인: %v", GlobalConfig.Kakao.ClientID != "")
	log.Printf("  정산 알림 메일: %v", GlobalConfig.Email.Enabled)
}
