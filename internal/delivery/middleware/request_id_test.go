package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "gatehouse/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name   string
		header string
	}{
		{name: "propagates caller id", header: "req-from-caller"},
		{name: "generates id", header: ""},
		{name: "replaces oversized id", header: strings.Repeat("x", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var ctxLogger *slog.Logger
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestIDFrom(c.Request().Context())
				ctxLogger = deliverycontext.LoggerFrom(c.Request().Context(), nil)

				return nil
			})(c)

			require.NoError(t, err)
			assert.NotEmpty(t, ctxID)
			if want := deliverycontext.SanitizeRequestID(tt.header); want != "" {
				assert.Equal(t, want, ctxID)
			} else {
				assert.NotEqual(t, tt.header, ctxID)
			}
			assert.Equal(t, ctxID, rec.Header().Get(deliverycontext.HeaderRequestID))
			assert.Equal(t, ctxID, deliverycontext.EchoRequestID(c))
			assert.NotNil(t, ctxLogger)
		})
	}
}
