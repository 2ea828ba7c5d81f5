package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"class-booking-backend/internal/models"
)

// WebhookClient POSTs new-order events to a configured bridge endpoint
// (KakaoTalk relay or any other consumer).
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

// OrderEvent is the webhook payload: the order plus the rendered customer
// and admin message bodies.
type OrderEvent struct {
	Type         string        `json:"type"`
	Order        *models.Order `json:"order"`
	UserMessage  string        `json:"userMessage"`
	AdminMessage string        `json:"adminMessage"`
}

func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (w *WebhookClient) Post(event OrderEvent) error {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequest("POST", w.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook rejected event: status %d, body: %s", resp.StatusCode, string(body))
	}

	return nil
}
