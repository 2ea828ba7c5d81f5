package notify

import (
	"fmt"
	"strconv"

	"github.com/resend/resend-go/v2"

	"class-booking-backend/internal/models"
)

const emailFrom = "Class Notification <onboarding@resend.dev>"

// EmailClient sends HTML notification mails through Resend.
type EmailClient struct {
	client *resend.Client
}

func NewEmailClient(apiKey string) *EmailClient {
	return &EmailClient{client: resend.NewClient(apiKey)}
}

func (e *EmailClient) Send(to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    emailFrom,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := e.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func orderEmailSubject(order *models.Order) string {
	return fmt.Sprintf("[클래스 신청] %s님이 %s 클래스를 신청했습니다", order.Name, order.Schedule)
}

func orderEmailHTML(order *models.Order) string {
	productName := "트리"
	if order.ProductType == models.ProductWreath {
		productName = "리스"
	}

	peopleCount := order.PeopleCount
	if peopleCount <= 0 {
		peopleCount = 1
	}

	totalAmount := "-"
	if order.TotalAmount > 0 {
		totalAmount = strconv.FormatInt(order.TotalAmount, 10)
	}

	rows := [][2]string{
		{"이름", order.Name},
		{"연락처", order.Phone},
		{"일정", order.Schedule},
		{"인원", fmt.Sprintf("%d인", peopleCount)},
		{"제품", productName},
		{"결제금액", totalAmount + "원"},
	}

	body := `<div style="font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">` +
		`<h2 style="color: #2d5a3d; border-bottom: 2px solid #2d5a3d; padding-bottom: 10px;">새로운 클래스 신청이 접수되었습니다</h2>` +
		`<table style="width: 100%; border-collapse: collapse;">`
	for _, row := range rows {
		body += fmt.Sprintf(
			`<tr><td style="padding: 8px 0; font-weight: bold; color: #555; width: 100px;">%s</td><td style="padding: 8px 0;">%s</td></tr>`,
			row[0], row[1],
		)
	}
	body += `</table>` +
		`<p style="color: #666; font-size: 14px;">신청 상태: <strong style="color: #f5a623;">대기</strong><br>입금 확인 후 관리자 페이지에서 확정으로 변경해주세요.</p>` +
		`</div>`

	return body
}
