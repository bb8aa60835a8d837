package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"skateshop/storefront/internal/config"
	"skateshop/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.EmailJSConfig {
	return config.EmailJSConfig{
		BaseURL:    baseURL,
		ServiceID:  "service_test",
		TemplateID: "template_test",
		PublicKey:  "public_test",
		Timeout:    5,
	}
}

func testInquiry() domain.Inquiry {
	return domain.Inquiry{
		Name:    "Ada",
		Title:   "Deck sizes",
		Message: "Do you stock 8.5 decks?",
		Email:   "ada@example.com",
	}
}

func TestNewEmailJSClient_RequiresCredentials(t *testing.T) {
	for _, mutate := range []func(*config.EmailJSConfig){
		func(c *config.EmailJSConfig) { c.ServiceID = "" },
		func(c *config.EmailJSConfig) { c.TemplateID = "" },
		func(c *config.EmailJSConfig) { c.PublicKey = "" },
	} {
		cfg := testConfig("http://unused")
		mutate(&cfg)
		_, err := NewEmailJSClient(cfg)
		assert.ErrorIs(t, err, ErrMissingCredentials)
	}
}

func TestSendInquiry_Success(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, sendPath, r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	notifier, err := NewEmailJSClient(testConfig(server.URL))
	require.NoError(t, err)

	resp, err := notifier.SendInquiry(context.Background(), testInquiry())
	require.NoError(t, err)
	assert.Equal(t, &Response{Status: http.StatusOK, Text: "OK"}, resp)

	assert.Equal(t, "service_test", got.ServiceID)
	assert.Equal(t, "template_test", got.TemplateID)
	assert.Equal(t, "public_test", got.UserID)
	assert.Empty(t, got.AccessToken)
	assert.Equal(t, map[string]string{
		"name":       "Ada",
		"title":      "Deck sizes",
		"message":    "Do you stock 8.5 decks?",
		"user_email": "ada@example.com",
	}, got.TemplateParams)
}

func TestSendInquiry_PrivateKey(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.PrivateKey = "private_test"
	notifier, err := NewEmailJSClient(cfg)
	require.NoError(t, err)

	_, err = notifier.SendInquiry(context.Background(), testInquiry())
	require.NoError(t, err)
	assert.Equal(t, "private_test", raw["accessToken"])
}

func TestSendInquiry_RejectedIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The Public Key is invalid"))
	}))
	defer server.Close()

	notifier, err := NewEmailJSClient(testConfig(server.URL))
	require.NoError(t, err)

	resp, err := notifier.SendInquiry(context.Background(), testInquiry())
	assert.Nil(t, resp)

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, http.StatusBadRequest, deliveryErr.Status)
	assert.Equal(t, "The Public Key is invalid", deliveryErr.Text)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSendInquiry_ServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	notifier, err := NewEmailJSClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = notifier.SendInquiry(context.Background(), testInquiry())
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSendInquiry_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	notifier, err := NewEmailJSClient(testConfig(baseURL))
	require.NoError(t, err)

	_, err = notifier.SendInquiry(context.Background(), testInquiry())
	assert.Error(t, err)
}

func TestSendInquiry_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	notifier, err := NewEmailJSClient(testConfig(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = notifier.SendInquiry(ctx, testInquiry())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSendInquiry_CancelledWhileRateLimited(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxRequestsPerSecond = 1
	notifier, err := NewEmailJSClient(cfg)
	require.NoError(t, err)

	_, err = notifier.SendInquiry(context.Background(), testInquiry())
	require.NoError(t, err)

	t.Run("AlreadyCancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		_, err := notifier.SendInquiry(ctx, testInquiry())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), 500*time.Millisecond, "does not wait for the limiter")
	})

	t.Run("ExpiresWhileWaiting", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := notifier.SendInquiry(ctx, testInquiry())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	assert.Equal(t, int32(1), calls.Load(), "cancelled inquiries never reach the provider")
}
