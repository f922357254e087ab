package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aelexs/temporal-query-service/internal/observability"
	"github.com/stretchr/testify/assert"
)

func TestRedactingHandler(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		value        string
		shouldRedact bool
	}{
		{"api_key is redacted", "api_key", "secret123", true},
		{"password is redacted", "password", "mysecret", true},
		{"auth_token is redacted", "auth_token", "token123", true},
		{"authorization is redacted", "authorization", "Bearer xyz", true},
		{"private_key is redacted", "private_key", "-----BEGIN", true},
		{"timezone not redacted", "timezone", "America/New_York", false},
		{"unit not redacted", "unit", "days", false},
		{"request_id not redacted", "request_id", "req-123", false},
		{"error not redacted", "error", "something failed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := observability.NewRedactingHandler(&buf, nil)
			logger := slog.New(handler)

			logger.Info("test", tt.key, tt.value)
			output := buf.String()

			if tt.shouldRedact {
				assert.Contains(t, output, "[REDACTED]", "expected %s to be redacted", tt.key)
				assert.NotContains(t, output, tt.value, "expected actual value to not appear for %s", tt.key)
			} else {
				assert.Contains(t, output, tt.value, "expected %s value to appear", tt.key)
				assert.NotContains(t, output, "[REDACTED]", "expected %s to not be redacted", tt.key)
			}
		})
	}
}

func TestInitLogger(t *testing.T) {
	t.Run("creates logger with service context", func(t *testing.T) {
		cfg := observability.LogConfig{
			Level:       "info",
			Format:      "json",
			ServiceName: "chrono-test",
			Environment: "test",
		}

		logger := observability.InitLogger(cfg)
		assert.NotNil(t, logger)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := observability.LogConfig{
			Level:       "verbose",
			Format:      "text",
			ServiceName: "chrono-test",
			Environment: "test",
		}

		logger := observability.InitLogger(cfg)
		assert.NotNil(t, logger)
	})
}
