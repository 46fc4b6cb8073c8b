// Package notify delivers customer-facing email through the Resend API.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const apiURL = "https://api.resend.com/emails"

type Mailer struct {
	apiKey string
	from   string
	client *http.Client
}

// NewMailer builds a mailer. With an empty key the mailer only logs, which is
// the development behaviour.
func NewMailer(apiKey, from string) *Mailer {
	return &Mailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.apiKey == "" {
		log.Printf("[mail disabled] to=%s subject=%q body=%q", to, subject, body)
		return nil
	}

	payload, err := json.Marshal(emailPayload{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}
	return nil
}
