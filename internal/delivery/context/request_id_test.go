package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestScope_Accessors(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With("request_id", "req-1")

	assert.Empty(t, RequestIDFrom(context.Background()))
	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))

	ctx := WithScope(context.Background(), "req-1", scoped)
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Same(t, scoped, LoggerFrom(ctx, fallback))

	idOnly := WithScope(context.Background(), "req-2", nil)
	assert.Equal(t, "req-2", RequestIDFrom(idOnly))
	assert.Same(t, fallback, LoggerFrom(idOnly, fallback))
}

func TestBind(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, EchoRequestID(c))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	Bind(c, "req-3", logger)

	assert.Equal(t, "req-3", EchoRequestID(c))
	assert.Equal(t, "req-3", RequestIDFrom(c.Request().Context()))
	assert.Same(t, logger, LoggerFrom(c.Request().Context(), nil))
}

func TestSanitizeRequestID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "kept", raw: "abc-123", want: "abc-123"},
		{name: "trimmed", raw: "  abc  ", want: "abc"},
		{name: "longest allowed", raw: strings.Repeat("a", 128), want: strings.Repeat("a", 128)},
		{name: "too long", raw: strings.Repeat("a", 129), want: ""},
		{name: "inner space", raw: "a b", want: ""},
		{name: "control byte", raw: "a\x00b", want: ""},
		{name: "non ascii", raw: "réq", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeRequestID(tt.raw))
		})
	}
}
