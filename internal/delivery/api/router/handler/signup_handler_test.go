package handler

import (
	"net/http"
	"testing"
	"time"

	"gatehouse/internal/domain/constants"
	domainerrors "gatehouse/internal/domain/errors"
	mockUsecase "gatehouse/internal/mocks/usecase"
	"gatehouse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSignupHandler(t *testing.T) (*SignupHandler, *mockUsecase.MockSignupUsecase) {
	t.Helper()

	cfg := newTestConfig(constants.EnvDevelop)
	uc := mockUsecase.NewMockSignupUsecase(t)

	return NewSignupHandler(SignupHandlerParams{
		Usecase: uc,
		Cookies: NewCookieJar(cfg),
		Config:  cfg,
	}), uc
}

func TestSignupHandler_Begin(t *testing.T) {
	h, uc := newSignupHandler(t)
	uc.EXPECT().BeginSignup(mock.Anything, &usecase.BeginSignupInput{Email: "A@x.com"}).
		Return(&usecase.BeginSignupOutput{SignupToken: "signup-tok", Email: "a@x.com", ExpiresIn: 24 * time.Hour}, nil).Once()

	c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/signup", body: `{"email":"A@x.com"}`})
	handle(t, c, h.Begin)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "signup-tok", responseCookie(t, rec, CookieSignup).Value)
	assert.Contains(t, rec.Body.String(), `"email":"a@x.com"`)
}

func TestSignupHandler_BeginDuplicate(t *testing.T) {
	h, uc := newSignupHandler(t)
	uc.EXPECT().BeginSignup(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateCandidate).Once()

	c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/signup", body: `{"email":"a@x.com"}`})
	handle(t, c, h.Begin)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_CANDIDATE")
}

func TestSignupHandler_Verify(t *testing.T) {
	t.Run("cookie", func(t *testing.T) {
		h, uc := newSignupHandler(t)
		uc.EXPECT().VerifySignup(mock.Anything, "signup-tok").Return(&usecase.VerifySignupOutput{Email: "a@x.com"}, nil).Once()

		c, rec := newTestContext(t, testRequest{
			method:  http.MethodGet,
			target:  "/signup/verify",
			cookies: []*http.Cookie{{Name: CookieSignup, Value: "signup-tok"}},
		})
		handle(t, c, h.Verify)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("emailed link persists cookie", func(t *testing.T) {
		h, uc := newSignupHandler(t)
		uc.EXPECT().VerifySignup(mock.Anything, "link-tok").Return(&usecase.VerifySignupOutput{Email: "a@x.com"}, nil).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/signup/verify?token=link-tok"})
		handle(t, c, h.Verify)

		assert.Equal(t, http.StatusOK, rec.Code)
		cookie := responseCookie(t, rec, CookieSignup)
		assert.Equal(t, "link-tok", cookie.Value)
		assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	})

	t.Run("stage gone", func(t *testing.T) {
		h, uc := newSignupHandler(t)
		uc.EXPECT().VerifySignup(mock.Anything, "link-tok").Return(nil, domainerrors.ErrStageNotFound).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/signup/verify?token=link-tok"})
		handle(t, c, h.Verify)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestSignupHandler_Finalize(t *testing.T) {
	h, uc := newSignupHandler(t)
	uc.EXPECT().FinalizeSignup(mock.Anything, "signup-tok", &usecase.FinalizeSignupInput{Username: "alice", Password: "pw"}).
		Return(&usecase.FinalizeSignupOutput{Account: testAccount(), SessionToken: "session-tok", ExpiresIn: 24 * time.Hour}, nil).Once()

	c, rec := newTestContext(t, testRequest{
		method:  http.MethodPost,
		target:  "/signup/finalize",
		body:    `{"username":"alice","password":"pw"}`,
		cookies: []*http.Cookie{{Name: CookieSignup, Value: "signup-tok"}},
	})
	handle(t, c, h.Finalize)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, -1, responseCookie(t, rec, CookieSignup).MaxAge)
	assert.Equal(t, "session-tok", responseCookie(t, rec, CookieSession).Value)
}

func TestSignupHandler_FinalizeMissingUsername(t *testing.T) {
	h, _ := newSignupHandler(t)

	c, rec := newTestContext(t, testRequest{
		method:  http.MethodPost,
		target:  "/signup/finalize",
		body:    `{"password":"pw"}`,
		cookies: []*http.Cookie{{Name: CookieSignup, Value: "signup-tok"}},
	})
	handle(t, c, h.Finalize)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username required")
}
