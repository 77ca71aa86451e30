package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// 카카오 OAuth 엔드포인트. 테스트에서 교체할 수 있도록 변수로 둔다.
var (
	kakaoAuthorizeURL = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL     = "https://kauth.kakao.com/oauth/token"
	kakaoUserInfoURL  = "https://kapi.kakao.com/v2/user/me"
)

// KakaoToken 토큰 응답
type KakaoToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
}

// KakaoUserInfo 사용자 정보 응답
type KakaoUserInfo struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname string `json:"nickname"`
	} `json:"properties"`
	KakaoAccount struct {
		Email string `json:"email"`
	} `json:"kakao_account"`
}

// KakaoID 사용자 테이블의 kakao_id 로 쓰는 문자열 ID
func (u *KakaoUserInfo) KakaoID() string {
	return strconv.FormatInt(u.ID, 10)
}

// Nickname 닉네임, 없으면 "User"
func (u *KakaoUserInfo) Nickname() string {
	if u.Properties.Nickname != "" {
		return u.Properties.Nickname
	}
	return "User"
}

// BuildKakaoAuthURL 카카오 인가 페이지 URL 구성
func BuildKakaoAuthURL(clientID, redirectURI string) string {
	params := url.Values{}
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")
	return kakaoAuthorizeURL + "?" + params.Encode()
}

// ExchangeKakaoToken 인가 코드를 access_token 으로 교환한다.
// 카카오 토큰 엔드포인트는 application/x-www-form-urlencoded 를 요구한다.
func ExchangeKakaoToken(clientID, clientSecret, code, redirectURI string) (*KakaoToken, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", clientID)
	form.Set("redirect_uri", redirectURI)
	form.Set("code", code)
	if clientSecret != "" {
		form.Set("client_secret", clientSecret)
	}

	req, err := http.NewRequest("POST", kakaoTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("카카오 서버 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}

	var token KakaoToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("응답 파싱 실패: %w", err)
	}
	if token.AccessToken == "" {
		var errResp struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}
		_ = json.Unmarshal(data, &errResp)
		msg := errResp.ErrorDescription
		if msg == "" {
			msg = string(data)
		}
		return nil, fmt.Errorf("카카오 오류 응답: %s", msg)
	}
	return &token, nil
}

// GetKakaoUserInfo access_token 으로 사용자 정보를 조회한다
func GetKakaoUserInfo(accessToken string) (*KakaoUserInfo, error) {
	req, err := http.NewRequest("GET", kakaoUserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("카카오 서버 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}

	var userInfo KakaoUserInfo
	if err := json.Unmarshal(data, &userInfo); err != nil {
		return nil, fmt.Errorf("응답 파싱 실패: %w", err)
	}
	if userInfo.ID == 0 {
		return nil, fmt.Errorf("카카오 사용자 정보에 id 가 없습니다")
	}
	return &userInfo, nil
}
