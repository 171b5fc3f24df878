// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"gatehouse/config"

	"github.com/labstack/echo/v4"
)

// Token cookies, one per token kind.
const (
	CookieSession = "user_token"
	CookieSignup  = "auth_token"
	CookieReset   = "forget_token"
)

// CookieJar writes the token cookies with a uniform policy: HttpOnly, SameSite=Strict,
// Path=/ and Secure in production.
type CookieJar struct {
	domain string
	secure bool
}

func NewCookieJar(cfg *config.Config) *CookieJar {
	jar := &CookieJar{secure: cfg.IsProduction()}
	if cfg.Cookie != nil {
		jar.domain = cfg.Cookie.Domain
	}

	return jar
}

// Set stores value under name for ttl.
func (j *CookieJar) Set(c echo.Context, name, value string, ttl time.Duration) {
	cookie := j.base(name)
	cookie.Value = value
	cookie.MaxAge = int(ttl.Seconds())
	cookie.Expires = time.Now().Add(ttl)
	c.SetCookie(cookie)
}

// Clear expires the cookie in the browser.
func (j *CookieJar) Clear(c echo.Context, name string) {
	cookie := j.base(name)
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)
}

func (j *CookieJar) base(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Path:     "/",
		Domain:   j.domain,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// cookieToken returns the named cookie's value, or "" when absent.
func cookieToken(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// linkToken prefers the cookie and falls back to ?token= from an emailed link.
// fromQuery tells the caller to persist the token as a cookie.
func linkToken(c echo.Context, name string) (token string, fromQuery bool) {
	if token = cookieToken(c, name); token != "" {
		return token, false
	}

	token = c.QueryParam("token")

	return token, token != ""
}
