package main

import (
	"flag"
	"log"
	"strings"

	"gagyebu/config"
	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/router"
)

// @title 가계부 API
// @version 1.0
// @description 공유 가계부 API. 지출, 예산 카테고리, 월 입금 사이클, 지출 정산을 관리한다.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "외부 설정 파일 경로(선택)")
	flag.StringVar(&configFile, "c", "", "외부 설정 파일 경로(약식)")
	flag.StringVar(&port, "port", "", "수신 포트, 예: 8080 또는 :8080")
	flag.StringVar(&port, "p", "", "수신 포트(약식)")
	flag.BoolVar(&showVersion, "version", false, "버전 표시")
	flag.BoolVar(&showVersion, "v", false, "버전 표시(약식)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("가계부 v1.0.0")
		return
	}

	// 설정 로드 (내장 설정 + 선택적 외부 설정 병합)
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 커맨드라인 포트가 설정을 덮어쓴다
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("커맨드라인 포트 지정: %s", port)
	}

	config.PrintConfig()

	// 데이터베이스 초기화
	if err := database.Init(cfg); err != nil {
		log.Fatalf("데이터베이스 초기화 실패: %v", err)
	}

	// 세션 토큰 초기화
	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  💸 가계부 서버 시작")
	log.Printf("==========================================")
	log.Printf("  카카오 로그인: http://localhost%s/auth/kakao", cfg.Server.Port)
	log.Printf("  Swagger:       http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:           http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("서버 시작 실패: %v", err)
	}
}
