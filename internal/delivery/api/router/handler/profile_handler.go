package handler

import (
	"net/http"

	"gatehouse/internal/delivery/api/response"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandler serves the signed-in account's profile.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	Usecase usecase.ProfileUsecase
}

func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{uc: params.Usecase}
}

func (h *ProfileHandler) Get(c echo.Context) error {
	account, err := h.uc.GetProfile(c.Request().Context(), cookieToken(c, CookieSession))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

type bioResponse struct {
	Bio string `json:"bio"`
}

// ChangeBio replaces the bio. The length check lives in the usecase.
func (h *ProfileHandler) ChangeBio(c echo.Context) error {
	ctx := c.Request().Context()
	token := cookieToken(c, CookieSession)

	input := new(usecase.ChangeBioInput)
	if bindErr := bindAndValidate(c, input); bindErr != nil {
		// The session is checked before the body is judged.
		if _, err := h.uc.GetProfile(ctx, token); err != nil {
			return errors.WithStack(err)
		}

		return bindErr
	}

	if err := h.uc.ChangeBio(ctx, token, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &bioResponse{Bio: input.Bio})
}
