package handler

import (
	"net/http"

	"gatehouse/internal/delivery/api/response"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandler serves login, logout and the current-session read.
type SessionHandler struct {
	uc      usecase.SessionUsecase
	cookies *CookieJar
}

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Usecase usecase.SessionUsecase
	Cookies *CookieJar
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{uc: params.Usecase, cookies: params.Cookies}
}

// Login verifies the credentials and sets user_token.
func (h *SessionHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Set(c, CookieSession, output.SessionToken, output.ExpiresIn)

	return response.Success(c, http.StatusOK, toAccountResponse(output.Account))
}

// Logout requires a live session, then clears user_token.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), cookieToken(c, CookieSession)); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Clear(c, CookieSession)

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "logged out"})
}

// Session returns the account behind user_token.
func (h *SessionHandler) Session(c echo.Context) error {
	account, err := h.uc.Authenticate(c.Request().Context(), cookieToken(c, CookieSession))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}
