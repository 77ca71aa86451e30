package service

import (
	"fmt"
	"strings"

	"gagyebu/config"
	"gagyebu/models"

	"gopkg.in/gomail.v2"
)

// EmailService 정산 알림 메일 서비스
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 메일 서비스 생성
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendSettlementNotice 정산 생성 시 송금자에게 보내는 알림 메일.
// 메일 기능이 꺼져 있으면 오류를 돌려주고, 호출측은 로그만 남긴다.
func (s *EmailService) SendSettlementNotice(toEmail, username, monthLabel string, settlements []models.ExpenseSettlement) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("메일 기능이 비활성화되어 있습니다")
	}
	if toEmail == "" {
		return fmt.Errorf("수신자 이메일이 없습니다")
	}

	subject := fmt.Sprintf("[가계부] %s 지출 정산 안내", monthLabel)
	body := s.generateSettlementBody(username, monthLabel, settlements)
	return s.sendEmail(toEmail, subject, body)
}

// generateSettlementBody 정산 항목 목록을 담은 메일 본문
func (s *EmailService) generateSettlementBody(username, monthLabel string, settlements []models.ExpenseSettlement) string {
	var rows strings.Builder
	for _, st := range settlements {
		categoryName := ""
		if st.Category != nil {
			categoryName = st.Category.Name
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px 12px;border-bottom:1px solid #eee;">%s</td><td style="padding:8px 12px;border-bottom:1px solid #eee;">%s</td><td style="padding:8px 12px;border-bottom:1px solid #eee;text-align:right;">%s원</td></tr>`,
			categoryName, st.ToUser, st.Amount.StringFixed(0)))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; background: #f5f5f5; padding: 20px;">
  <div style="max-width: 560px; margin: 0 auto; background: #fff; border-radius: 12px; padding: 32px;">
    <h2 style="margin-top: 0;">💸 %s 지출 정산</h2>
    <p><strong>%s</strong>님, 모든 입금이 완료되어 정산 항목이 생성되었습니다.</p>
    <p>아래 항목을 받는 분에게 송금해주세요.</p>
    <table style="width:100%%;border-collapse:collapse;margin:16px 0;">
      <tr><th style="text-align:left;padding:8px 12px;">카테고리</th><th style="text-align:left;padding:8px 12px;">받는 사람</th><th style="text-align:right;padding:8px 12px;">금액</th></tr>
      %s
    </table>
    <p style="color:#6c757d;font-size:12px;">이 메일은 자동 발송되었습니다.</p>
  </div>
</body>
</html>
`, monthLabel, username, rows.String())
}

// sendEmail SMTP 발송
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("메일 발송 실패: %w", err)
	}
	return nil
}
