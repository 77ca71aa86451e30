package api

import (
	"net/http"
	"net/url"

	"gagyebu/config"
	"gagyebu/database"
	"gagyebu/middleware"
	"gagyebu/models"
	"gagyebu/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 카카오 로그인 처리기
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 인증 처리기 생성
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// redirectURI 설정값이 없으면 base_url 로부터 만든다
func (h *AuthHandler) redirectURI() string {
	if h.cfg.Kakao.RedirectURI != "" {
		return h.cfg.Kakao.RedirectURI
	}
	baseURL := h.cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost" + h.cfg.Server.Port
	}
	return baseURL + "/auth/kakao/callback"
}

// setSessionCookie 세션 토큰을 httpOnly 쿠키로 내려준다
func (h *AuthHandler) setSessionCookie(c *gin.Context, user *models.User) error {
	token, err := middleware.GenerateTokenWithRole(user.ID, user.Username, user.Role, h.cfg.JWT.ExpireTime)
	if err != nil {
		return err
	}
	maxAge := h.cfg.JWT.ExpireHours * 3600
	secure := h.cfg.Server.Mode == "release"
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", secure, true)
	return nil
}

// redirectWithError 로그인 페이지로 오류 메시지와 함께 돌려보낸다
func redirectWithError(c *gin.Context, errMsg string) {
	c.Redirect(http.StatusFound, "/?error="+url.QueryEscape(errMsg))
}

// KakaoLogin 카카오 인가 페이지로 리다이렉트
// @Summary 카카오 로그인 시작
// @Description 카카오 OAuth 인가 페이지로 리다이렉트한다
// @Tags 인증
// @Success 302 "카카오 인가 페이지로 리다이렉트"
// @Failure 302 "로그인 미설정 시 error 파라미터와 함께 리다이렉트"
// @Router /auth/kakao [get]
func (h *AuthHandler) KakaoLogin(c *gin.Context) {
	if h.cfg.Kakao.ClientID == "" {
		redirectWithError(c, "카카오 로그인이 설정되지 않았습니다")
		return
	}
	c.Redirect(http.StatusFound, service.BuildKakaoAuthURL(h.cfg.Kakao.ClientID, h.redirectURI()))
}

// KakaoCallback 카카오 OAuth 콜백
// @Summary 카카오 인가 콜백
// @Description code 를 토큰으로 교환하고 사용자를 조회/생성한 뒤 세션을 발급한다. 미승인 사용자는 pending_approval 로 돌려보낸다.
// @Tags 인증
// @Param code query string true "인가 코드"
// @Success 302 "홈으로 리다이렉트"
// @Failure 302 "오류 시 error 파라미터와 함께 리다이렉트"
// @Router /auth/kakao/callback [get]
func (h *AuthHandler) KakaoCallback(c *gin.Context) {
	if errCode := c.Query("error"); errCode != "" {
		redirectWithError(c, "카카오 인증이 거부되었습니다")
		return
	}
	code := c.Query("code")
	if code == "" {
		redirectWithError(c, "인가 코드를 받지 못했습니다")
		return
	}

	token, err := service.ExchangeKakaoToken(h.cfg.Kakao.ClientID, h.cfg.Kakao.ClientSecret, code, h.redirectURI())
	if err != nil {
		redirectWithError(c, "카카오 인증에 실패했습니다")
		return
	}

	info, err := service.GetKakaoUserInfo(token.AccessToken)
	if err != nil {
		redirectWithError(c, "카카오 사용자 정보를 가져오지 못했습니다")
		return
	}

	// kakao_id 로 조회, 없으면 미승인 상태로 생성
	var user models.User
	if err := database.DB.Where("kakao_id = ?", info.KakaoID()).First(&user).Error; err != nil {
		user = models.User{
			KakaoID:  info.KakaoID(),
			Username: info.Nickname(),
			Email:    info.KakaoAccount.Email,
			Role:     models.RoleUser,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			redirectWithError(c, "사용자 생성에 실패했습니다")
			return
		}
	}

	// 가족 구성원만 쓰는 서비스라 승인 전에는 들어올 수 없다
	if !user.IsApproved {
		redirectWithError(c, "pending_approval")
		return
	}

	if err := h.setSessionCookie(c, &user); err != nil {
		redirectWithError(c, "세션 발급에 실패했습니다")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// DevLoginRequest dev 로그인 요청
type DevLoginRequest struct {
	Username string `json:"username" binding:"required" example:"권혁상"`
}

// DevLogin 개발용 로그인. debug 모드에서만 열린다.
// @Summary 개발용 로그인
// @Description username 으로 사용자를 찾거나 dev 계정을 만들어 세션을 발급한다. release 모드에서는 404.
// @Tags 인증
// @Accept json
// @Produce json
// @Param request body DevLoginRequest true "로그인할 사용자 이름"
// @Success 200 {object} Response{data=models.User} "로그인 성공"
// @Failure 400 {object} Response "요청 오류"
// @Failure 404 {object} Response "release 모드"
// @Router /auth/dev-login [post]
func (h *AuthHandler) DevLogin(c *gin.Context) {
	if !config.IsDebug() {
		NotFound(c, "존재하지 않는 경로입니다")
		return
	}

	var req DevLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "사용자 이름이 필요합니다"))
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		// dev- 접두사 계정은 정산 대상 사용자에서 제외된다
		user = models.User{
			KakaoID:    "dev-" + req.Username,
			Username:   req.Username,
			Role:       models.RoleUser,
			IsApproved: true,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "사용자 생성에 실패했습니다"))
			return
		}
	}

	if err := h.setSessionCookie(c, &user); err != nil {
		InternalError(c, SafeErrorMessage(err, "세션 발급에 실패했습니다"))
		return
	}
	SuccessWithMessage(c, "로그인되었습니다", user)
}

// Profile 현재 로그인한 사용자 정보
// @Summary 내 정보 조회
// @Tags 인증
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "조회 성공"
// @Failure 401 {object} Response "미인증"
// @Router /api/v1/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		Unauthorized(c, "사용자를 찾을 수 없습니다")
		return
	}
	Success(c, user)
}

// Logout 세션 쿠키 제거
// @Summary 로그아웃
// @Tags 인증
// @Produce json
// @Success 200 {object} Response "로그아웃 성공"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	SuccessWithMessage(c, "로그아웃되었습니다", nil)
}
