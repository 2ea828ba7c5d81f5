// Package notify fans a new-order event out to SMS, a generic webhook, and
// email. Delivery is best effort: channels are independently optional, a
// failed channel never blocks the others, and failures surface only in the
// server log.
package notify

import (
	"fmt"
	"log"
	"sync"

	"class-booking-backend/internal/config"
	"class-booking-backend/internal/models"
)

const fallbackContact = "010-4086-6231"

// EmailSettings comes from the saved form configuration, not from env.
type EmailSettings struct {
	Enabled    bool
	AdminEmail string
}

type Notifier struct {
	sms        *SMSClient
	webhook    *WebhookClient
	email      *EmailClient
	adminPhone string
}

// New wires up whichever channels the environment configures. An
// unconfigured channel is nil and skipped silently at dispatch time.
func New(cfg *config.Config) *Notifier {
	n := &Notifier{adminPhone: cfg.AdminPhoneNumber}

	if cfg.SMSEnabled() {
		n.sms = NewSMSClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	} else {
		log.Println("Twilio credentials not set, SMS notifications disabled")
	}

	if cfg.OrderWebhookURL != "" {
		n.webhook = NewWebhookClient(cfg.OrderWebhookURL)
	}

	if cfg.ResendAPIKey != "" {
		n.email = NewEmailClient(cfg.ResendAPIKey)
	} else {
		log.Println("Resend API key not set, email notifications disabled")
	}

	return n
}

// OrderCreated attempts every configured channel and waits for all of them
// to settle. Callers that must not block run it in a goroutine.
func (n *Notifier) OrderCreated(order *models.Order, email EmailSettings) {
	contact := n.adminPhone
	if contact == "" {
		contact = fallbackContact
	}

	userMessage := fmt.Sprintf(
		"[변화 x Piri Flore] 신청이 접수되었습니다.\n이름: %s\n일정: %s\n입금 확인 후 확정 문자/카톡을 드립니다. 문의: %s",
		order.Name, order.Schedule, contact,
	)
	adminMessage := fmt.Sprintf(
		"[변화 x Piri Flore 신청 알림]\n이름: %s\n연락처: %s\n일정: %s\n스테이터스: 신규 대기",
		order.Name, order.Phone, order.Schedule,
	)

	var wg sync.WaitGroup
	attempt := func(channel string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				log.Printf("Notification channel %s failed: %v", channel, err)
			}
		}()
	}

	if n.sms != nil {
		attempt("sms:customer", func() error {
			return n.sms.Send(order.Phone, userMessage)
		})
		if n.adminPhone != "" {
			attempt("sms:admin", func() error {
				return n.sms.Send(n.adminPhone, adminMessage)
			})
		}
	}

	if n.webhook != nil {
		attempt("webhook", func() error {
			return n.webhook.Post(OrderEvent{
				Type:         "order_created",
				Order:        order,
				UserMessage:  userMessage,
				AdminMessage: adminMessage,
			})
		})
	}

	if n.email != nil && email.Enabled && email.AdminEmail != "" {
		attempt("email", func() error {
			return n.email.Send(email.AdminEmail, orderEmailSubject(order), orderEmailHTML(order))
		})
	}

	wg.Wait()
}
