package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// OutboundEmail - одно исходящее письмо
type OutboundEmail struct {
	To      string
	Subject string
	HTML    string
	// IdempotencyKey защищает от дублей при ретраях провайдера; пустой - без защиты
	IdempotencyKey string
}

// EmailSender отправляет письма и возвращает message id провайдера.
type EmailSender interface {
	SendEmail(ctx context.Context, email OutboundEmail) (string, error)
}

// NoopEmailSender используется, когда отправка почты выключена (dev-режим).
type NoopEmailSender struct{}

func (s *NoopEmailSender) SendEmail(ctx context.Context, email OutboundEmail) (string, error) {
	log.Printf("[EmailSender] noop send to=%s subject=%q", email.To, email.Subject)
	return "noop", nil
}

// ResendEmailSender отправляет письма через Resend REST API.
type ResendEmailSender struct {
	from   string
	client *resend.Client
}

func NewResendEmailSender(apiKey, from string) (*ResendEmailSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailSender{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

func (s *ResendEmailSender) SendEmail(ctx context.Context, email OutboundEmail) (string, error) {
	if email.To == "" || email.Subject == "" {
		return "", fmt.Errorf("to and subject are required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	}

	options := &resend.SendEmailOptions{}
	if strings.TrimSpace(email.IdempotencyKey) != "" {
		options.IdempotencyKey = strings.TrimSpace(email.IdempotencyKey)
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		sent, err := s.client.Emails.SendWithOptions(ctx, params, options)
		if err == nil {
			return sent.Id, nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return "", fmt.Errorf("resend send failed: %w", err)
	}

	return "", fmt.Errorf("resend send failed after retries: %w", lastErr)
}

// resendRetryDelay решает, стоит ли повторять отправку и с какой задержкой.
// Rate limit уважает Retry-After (с потолком 30s), сетевые таймауты
// повторяются с линейным backoff.
func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && (netErr.Timeout() || netErr.Temporary()) {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporar") {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	return 0, false
}
