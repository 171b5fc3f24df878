// Package context carries the per-request scope (request id and its logger) across
// the delivery, usecase and infra layers.
package context

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
)

// HeaderRequestID is read from callers and echoed on every response.
const HeaderRequestID = "X-Request-Id"

// maxRequestIDLength caps caller-supplied ids before they reach logs and Pub/Sub attributes.
const maxRequestIDLength = 128

type scopeKey struct{}

// echoScopeKey is where Bind stores the scope on echo.Context.
const echoScopeKey = "gatehouse.request_scope"

// Scope is what a request carries once the request id middleware ran.
type Scope struct {
	RequestID string
	Logger    *slog.Logger
}

// WithScope returns ctx carrying requestID and logger. Either may be empty.
func WithScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, &Scope{RequestID: requestID, Logger: logger})
}

func scopeFrom(ctx context.Context) *Scope {
	if ctx == nil {
		return nil
	}
	scope, _ := ctx.Value(scopeKey{}).(*Scope)

	return scope
}

// RequestIDFrom returns the request id in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	if scope := scopeFrom(ctx); scope != nil {
		return scope.RequestID
	}

	return ""
}

// LoggerFrom returns the request-scoped logger in ctx, or fallback.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope := scopeFrom(ctx); scope != nil && scope.Logger != nil {
		return scope.Logger
	}

	return fallback
}

// Bind attaches the scope to both the echo context and the request context.
func Bind(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoScopeKey, &Scope{RequestID: requestID, Logger: logger})
	c.SetRequest(c.Request().WithContext(WithScope(c.Request().Context(), requestID, logger)))
}

// EchoRequestID returns the id bound to c. Responses written before the middleware
// ran (e.g. router 404s) fall back to the request context and then "".
func EchoRequestID(c echo.Context) string {
	if scope, ok := c.Get(echoScopeKey).(*Scope); ok {
		return scope.RequestID
	}

	return RequestIDFrom(c.Request().Context())
}

// SanitizeRequestID trims raw and drops it when it is too long or not printable ASCII.
func SanitizeRequestID(raw string) string {
	id := strings.TrimSpace(raw)
	if len(id) > maxRequestIDLength {
		return ""
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return ""
		}
	}

	return id
}
