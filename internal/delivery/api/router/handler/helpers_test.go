package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gatehouse/config"
	apimiddleware "gatehouse/internal/delivery/api/middleware"
	"gatehouse/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestConfig(env string) *config.Config {
	cfg := &config.Config{
		Auth:   &config.AuthConfig{SessionTTL: 24 * time.Hour, SignupTTL: 24 * time.Hour, ResetTTL: time.Hour},
		Cookie: &config.CookieConfig{Domain: "gatehouse.test"},
	}
	cfg.Env.Env = env

	return cfg
}

type testRequest struct {
	method  string
	target  string
	body    string
	cookies []*http.Cookie
}

func newTestContext(t *testing.T, req testRequest) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var httpReq *http.Request
	if req.body != "" {
		httpReq = httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		httpReq = httptest.NewRequest(req.method, req.target, nil)
	}
	for _, cookie := range req.cookies {
		httpReq.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()

	return e.NewContext(httpReq, rec), rec
}

// handle runs h and routes a returned error through the API error handler, as echo would.
func handle(t *testing.T, c echo.Context, h echo.HandlerFunc) {
	t.Helper()

	if err := h(c); err != nil {
		apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)
	}
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	require.Failf(t, "cookie not set", "expected Set-Cookie for %s", name)

	return nil
}
