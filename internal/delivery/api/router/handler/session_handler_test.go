package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"gatehouse/internal/domain/constants"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	mockUsecase "gatehouse/internal/mocks/usecase"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionHandler(t *testing.T) (*SessionHandler, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockSessionUsecase(t)

	return NewSessionHandler(SessionHandlerParams{
		Usecase: uc,
		Cookies: NewCookieJar(newTestConfig(constants.EnvDevelop)),
	}), uc
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.MustParse("6f1c1b1e-8a44-4a4f-9d8e-4c1f0f7f2a10"),
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$04$secret",
		Bio:          "hi",
	}
}

func TestSessionHandler_Login(t *testing.T) {
	h, uc := newSessionHandler(t)
	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "pw"}).
		Return(&usecase.LoginOutput{SessionToken: "session-tok", ExpiresIn: 24 * time.Hour, Account: testAccount()}, nil).Once()

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/auth/login",
		body:   `{"email":"a@x.com","password":"pw"}`,
	})
	handle(t, c, h.Login)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-tok", responseCookie(t, rec, CookieSession).Value)
	assert.NotContains(t, rec.Body.String(), "secret")

	var body struct {
		Data AccountResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Data.Username)
}

func TestSessionHandler_LoginErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockSessionUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "missing password",
			body: `{"email":"a@x.com"}`,
			setup: func(uc *mockUsecase.MockSessionUsecase) {
				uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com"}).
					Return(nil, domainerrors.ErrBadCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "BAD_CREDENTIALS",
		},
		{
			name: "empty email",
			body: `{"email":"","password":"pw"}`,
			setup: func(uc *mockUsecase.MockSessionUsecase) {
				uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Password: "pw"}).
					Return(nil, domainerrors.ErrBadCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "BAD_CREDENTIALS",
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "bad credentials",
			body: `{"email":"a@x.com","password":"wrong"}`,
			setup: func(uc *mockUsecase.MockSessionUsecase) {
				uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrBadCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "BAD_CREDENTIALS",
		},
		{
			name: "internal",
			body: `{"email":"a@x.com","password":"pw"}`,
			setup: func(uc *mockUsecase.MockSessionUsecase) {
				uc.EXPECT().Login(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrInternal, "find account: timeout")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newSessionHandler(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/auth/login", body: tt.body})
			handle(t, c, h.Login)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.NotContains(t, rec.Body.String(), "timeout")
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	t.Run("clears cookie", func(t *testing.T) {
		h, uc := newSessionHandler(t)
		uc.EXPECT().Logout(mock.Anything, "session-tok").Return(nil).Once()

		c, rec := newTestContext(t, testRequest{
			method:  http.MethodPost,
			target:  "/auth/logout",
			cookies: []*http.Cookie{{Name: CookieSession, Value: "session-tok"}},
		})
		handle(t, c, h.Logout)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, -1, responseCookie(t, rec, CookieSession).MaxAge)
	})

	t.Run("without session", func(t *testing.T) {
		h, uc := newSessionHandler(t)
		uc.EXPECT().Logout(mock.Anything, "").Return(domainerrors.ErrUnauthenticated).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/auth/logout"})
		handle(t, c, h.Logout)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestSessionHandler_Session(t *testing.T) {
	h, uc := newSessionHandler(t)
	uc.EXPECT().Authenticate(mock.Anything, "session-tok").Return(testAccount(), nil).Once()

	c, rec := newTestContext(t, testRequest{
		method:  http.MethodGet,
		target:  "/auth/session",
		cookies: []*http.Cookie{{Name: CookieSession, Value: "session-tok"}},
	})
	handle(t, c, h.Session)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"a@x.com"`)
}
