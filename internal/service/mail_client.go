package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"theaterlist/internal/config"
)

// mailRequest is the relay's send payload.
type mailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// mailResponse is the relay's envelope.
type mailResponse struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

// MailClient talks to the practice's HTTP mail relay.
type MailClient struct {
	httpClient *resty.Client
	from       string
	logger     *zap.Logger
}

func NewMailClient(cfg config.MailConfig, logger *zap.Logger) *MailClient {
	client := resty.New().
		SetBaseURL(cfg.HTTPAddress).
		SetTimeout(cfg.Timeout).
		SetRetryCount(3).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}

	return &MailClient{
		httpClient: client,
		from:       cfg.FromAddress,
		logger:     logger,
	}
}

func (c *MailClient) Send(ctx context.Context, to, subject, body string) error {
	var result mailResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(mailRequest{
			From:    c.from,
			To:      to,
			Subject: subject,
			Body:    body,
		}).
		SetResult(&result).
		Post("/v1/messages")
	if err != nil {
		return fmt.Errorf("mail relay request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mail relay returned HTTP %d", resp.StatusCode())
	}
	if result.Status != 0 {
		return fmt.Errorf("mail relay rejected message: %s", result.Msg)
	}

	c.logger.Debug("Mail relay accepted message", zap.String("to", to))
	return nil
}
