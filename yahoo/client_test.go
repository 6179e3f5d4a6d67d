package yahoo

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// TestNewClient tests client construction with various options.
func TestNewClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := NewClient()

		if c.baseURL != DefaultBaseURL {
			t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
		}
		if c.httpClient.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 30*time.Second)
		}
		if c.maxRetries != 3 {
			t.Errorf("maxRetries = %d, want %d", c.maxRetries, 3)
		}
		if c.retryBackoff != time.Second {
			t.Errorf("retryBackoff = %v, want %v", c.retryBackoff, time.Second)
		}
		if c.limiter == nil {
			t.Fatal("limiter should not be nil")
		}
		if c.limiter.Limit() != rate.Limit(2) {
			t.Errorf("limiter rate = %v, want 2", c.limiter.Limit())
		}
	})

	t.Run("with base URL option", func(t *testing.T) {
		c := NewClient(WithBaseURL("http://127.0.0.1:9999"))
		if c.baseURL != "http://127.0.0.1:9999" {
			t.Errorf("baseURL = %q, want %q", c.baseURL, "http://127.0.0.1:9999")
		}
	})

	t.Run("with timeout option", func(t *testing.T) {
		c := NewClient(WithTimeout(5 * time.Second))
		if c.httpClient.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 5*time.Second)
		}
	})

	t.Run("with retries option", func(t *testing.T) {
		c := NewClient(WithRetries(5, 2*time.Second))
		if c.maxRetries != 5 {
			t.Errorf("maxRetries = %d, want %d", c.maxRetries, 5)
		}
		if c.retryBackoff != 2*time.Second {
			t.Errorf("retryBackoff = %v, want %v", c.retryBackoff, 2*time.Second)
		}
	})

	t.Run("with rate limit option", func(t *testing.T) {
		c := NewClient(WithRateLimit(rate.Limit(10), 5))
		if c.limiter.Limit() != rate.Limit(10) {
			t.Errorf("limiter rate = %v, want 10", c.limiter.Limit())
		}
		if c.limiter.Burst() != 5 {
			t.Errorf("limiter burst = %d, want 5", c.limiter.Burst())
		}
	})

	t.Run("with logger option", func(t *testing.T) {
		logger := zerolog.New(io.Discard).Level(zerolog.WarnLevel)
		c := NewClient(WithLogger(logger))
		if c.logger.GetLevel() != zerolog.WarnLevel {
			t.Error("logger not set correctly")
		}
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		c := NewClient(WithHTTPClient(customClient))
		if c.httpClient != customClient {
			t.Error("custom HTTP client not set")
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		c := NewClient(
			WithTimeout(15*time.Second),
			WithRetries(10, 500*time.Millisecond),
			WithRateLimit(rate.Inf, 1),
		)
		if c.httpClient.Timeout != 15*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 15*time.Second)
		}
		if c.maxRetries != 10 {
			t.Errorf("maxRetries = %d, want %d", c.maxRetries, 10)
		}
		if c.retryBackoff != 500*time.Millisecond {
			t.Errorf("retryBackoff = %v, want %v", c.retryBackoff, 500*time.Millisecond)
		}
		if c.limiter.Limit() != rate.Inf {
			t.Errorf("limiter rate = %v, want Inf", c.limiter.Limit())
		}
	})
}
