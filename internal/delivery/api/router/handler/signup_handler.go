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

// SignupHandler walks a registrant through begin, verify and finalize.
type SignupHandler struct {
	uc        usecase.SignupUsecase
	cookies   *CookieJar
	signupTTL time.Duration
}

// SignupHandlerParams holds dependencies for SignupHandler, injected by Fx.
type SignupHandlerParams struct {
	fx.In

	Usecase usecase.SignupUsecase
	Cookies *CookieJar
	Config  *config.Config
}

func NewSignupHandler(params SignupHandlerParams) *SignupHandler {
	return &SignupHandler{
		uc:        params.Usecase,
		cookies:   params.Cookies,
		signupTTL: params.Config.Auth.SignupTTL,
	}
}

type signupStartedResponse struct {
	Email string `json:"email"`
}

// Begin stages the candidate email and sets auth_token.
func (h *SignupHandler) Begin(c echo.Context) error {
	input := new(usecase.BeginSignupInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.BeginSignup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Set(c, CookieSignup, output.SignupToken, output.ExpiresIn)

	return response.Success(c, http.StatusAccepted, &signupStartedResponse{Email: output.Email})
}

// Verify confirms the signup token from the cookie or the emailed link.
func (h *SignupHandler) Verify(c echo.Context) error {
	token, fromQuery := linkToken(c, CookieSignup)

	output, err := h.uc.VerifySignup(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	if fromQuery {
		h.cookies.Set(c, CookieSignup, token, h.signupTTL)
	}

	return response.Success(c, http.StatusOK, output)
}

// Finalize creates the account, swaps auth_token for user_token and returns the account.
func (h *SignupHandler) Finalize(c echo.Context) error {
	input := new(usecase.FinalizeSignupInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.FinalizeSignup(c.Request().Context(), cookieToken(c, CookieSignup), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Clear(c, CookieSignup)
	h.cookies.Set(c, CookieSession, output.SessionToken, output.ExpiresIn)

	return response.Success(c, http.StatusCreated, toAccountResponse(output.Account))
}
