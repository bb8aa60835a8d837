package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skateshop/storefront/internal/config"
	"skateshop/storefront/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const sendPath = "/api/v1.0/email/send"

var ErrMissingCredentials = errors.New("emailjs service_id, template_id and public_key are required")

type InquiryNotifier interface {
	SendInquiry(ctx context.Context, inquiry domain.Inquiry) (*Response, error)
}

// Response is the provider's answer to a send call.
type Response struct {
	Status int    `json:"status"`
	Text   string `json:"text"`
}

// DeliveryError is returned when the provider rejects a send call.
type DeliveryError struct {
	Status int
	Text   string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("emailjs rejected inquiry: %d %s", e.Status, e.Text)
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

type emailJSClient struct {
	rl         ratelimit.Limiter
	config     config.EmailJSConfig
	httpClient *resty.Client
}

// NewEmailJSClient builds a notifier from configuration. Nothing is
// retried: every SendInquiry is exactly one outbound call.
func NewEmailJSClient(cfg config.EmailJSConfig) (InquiryNotifier, error) {
	if cfg.ServiceID == "" || cfg.TemplateID == "" || cfg.PublicKey == "" {
		return nil, ErrMissingCredentials
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "text/plain, application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &emailJSClient{
		rl:         rl,
		config:     cfg,
		httpClient: httpClient,
	}, nil
}

func (c *emailJSClient) SendInquiry(ctx context.Context, inquiry domain.Inquiry) (*Response, error) {
	body := sendRequest{
		ServiceID:      c.config.ServiceID,
		TemplateID:     c.config.TemplateID,
		UserID:         c.config.PublicKey,
		AccessToken:    c.config.PrivateKey,
		TemplateParams: inquiry.TemplateParams(),
	}

	// Take cannot be interrupted; skip it when the caller already gave up
	// and re-check once the slot is granted.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("inquiry cancelled: %w", err)
	}
	c.rl.Take()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("inquiry cancelled: %w", err)
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post(sendPath)
	if err != nil {
		log.Errorf("EmailJS Error: %v", err)
		if ctx.Err() != nil {
			return nil, fmt.Errorf("inquiry cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to send inquiry: %w", err)
	}

	if resp.IsError() {
		deliveryErr := &DeliveryError{Status: resp.StatusCode(), Text: resp.String()}
		log.Errorf("EmailJS Error: %v", deliveryErr)
		return nil, deliveryErr
	}

	log.Debugf("Inquiry from %s delivered: %d %s", inquiry.Email, resp.StatusCode(), resp.String())
	return &Response{Status: resp.StatusCode(), Text: resp.String()}, nil
}
