package handler

import (
	"net/http"
	"time"

	"gatehouse/config"
	"gatehouse/internal/delivery/api/response"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PasswordHandler serves the forgot, verify and reset steps.
type PasswordHandler struct {
	uc       usecase.PasswordResetUsecase
	cookies  *CookieJar
	resetTTL time.Duration
}

// PasswordHandlerParams holds dependencies for PasswordHandler, injected by Fx.
type PasswordHandlerParams struct {
	fx.In

	Usecase usecase.PasswordResetUsecase
	Cookies *CookieJar
	Config  *config.Config
}

func NewPasswordHandler(params PasswordHandlerParams) *PasswordHandler {
	return &PasswordHandler{
		uc:       params.Usecase,
		cookies:  params.Cookies,
		resetTTL: params.Config.Auth.ResetTTL,
	}
}

// Forgot stages a reset and sets forget_token.
func (h *PasswordHandler) Forgot(c echo.Context) error {
	input := new(usecase.BeginResetInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.BeginReset(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Set(c, CookieReset, output.ResetToken, output.ExpiresIn)

	return response.Success(c, http.StatusAccepted, &MessageResponse{Message: "reset link sent"})
}

// Verify confirms the reset token from the cookie or the emailed link.
func (h *PasswordHandler) Verify(c echo.Context) error {
	token, fromQuery := linkToken(c, CookieReset)

	output, err := h.uc.VerifyReset(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	if fromQuery {
		h.cookies.Set(c, CookieReset, token, h.resetTTL)
	}

	return response.Success(c, http.StatusOK, output)
}

// Reset stores the new password and clears forget_token.
func (h *PasswordHandler) Reset(c echo.Context) error {
	input := new(usecase.FinalizeResetInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	if err := h.uc.FinalizeReset(c.Request().Context(), cookieToken(c, CookieReset), input); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Clear(c, CookieReset)

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "password updated"})
}
