package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"creator-market/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey    = "request_id"
	requestIDHeader    = "X-Request-ID"
	maxUpstreamIDBytes = 64
)

// NewLogger builds the process logger and installs it as the slog default.
// Release mode logs JSON, everything else text.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if t, ok := a.Value.Any().(time.Time); ok && a.Key == slog.TimeKey {
				a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// RequestLogger logs every request twice: on arrival and with its outcome.
// The request id is echoed to the client and tagged on both lines.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := upstreamRequestID(c)
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		reqLog := logger.With(
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
		)
		if engine := c.Param("engine"); engine != "" {
			reqLog = reqLog.With("engine", engine)
		}
		reqLog.Info("Request started")

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"status_code", status,
			"duration", time.Since(start),
		}
		// RequireAuth runs inside c.Next, so the caller is only known here
		if id, ok := GetUserID(c); ok {
			role, _ := GetUserRole(c)
			attrs = append(attrs, "user_id", id.String(), "role", role.String())
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, "response_size", size)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			reqLog.Error("Request completed", attrs...)
		case status >= 400:
			reqLog.Warn("Request completed", attrs...)
		default:
			reqLog.Info("Request completed", attrs...)
		}
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

// upstreamRequestID reuses the proxy's id so a scrape can be traced across
// services; missing or oversized ids are replaced.
func upstreamRequestID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(requestIDHeader)); id != "" && len(id) <= maxUpstreamIDBytes {
		return id
	}
	return uuid.NewString()
}
