package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Config holds mail provider configuration. An empty APIKey puts the client
// in development mode: tokens are logged instead of sent.
type Config struct {
	APIKey    string
	APIURL    string
	FromEmail string
	FromName  string
}

// Client sends payment confirmation tokens over a SendGrid-style JSON API.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a mail client
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type apiRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []address `json:"to"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SendToken delivers a payment confirmation token to the payer's registered
// email address.
func (c *Client) SendToken(ctx context.Context, to, toName, token string, amount decimal.Decimal, description string, expiresAt time.Time) error {
	html, err := renderTokenEmail(token, amount, description, expiresAt)
	if err != nil {
		return fmt.Errorf("render token email: %w", err)
	}

	if c.config.APIKey == "" {
		log.Warn().
			Str("to", to).
			Str("token", token).
			Msg("Mail API key not configured, token not sent")
		return nil
	}

	request := apiRequest{
		Personalizations: []personalization{
			{To: []address{{Email: to, Name: toName}}},
		},
		From:    address{Email: c.config.FromEmail, Name: c.config.FromName},
		Subject: "Payment confirmation token",
		Content: []content{{Type: "text/html", Value: html}},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}

	return nil
}
