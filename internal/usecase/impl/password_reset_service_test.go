package impl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	mockRepo "gatehouse/internal/mocks/repository"
	mockSvc "gatehouse/internal/mocks/service"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resetFixture struct {
	service   usecase.PasswordResetUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	resetRepo *mockRepo.MockResetStageRepository
	notifier  *mockSvc.MockNotifier
	codec     service.TokenCodec
	hasher    service.PasswordHasher
}

func newResetFixture(t *testing.T) *resetFixture {
	cfg := newTestConfig()
	f := &resetFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		resetRepo: mockRepo.NewMockResetStageRepository(t),
		notifier:  mockSvc.NewMockNotifier(t),
		codec:     newTestCodec(t, cfg),
		hasher:    newTestHasher(t),
	}

	f.service = NewPasswordResetService(PasswordResetServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		ResetRepo: f.resetRepo,
		Codec:     f.codec,
		Hasher:    f.hasher,
		Notifier:  f.notifier,
		Metrics:   newNopMetrics(t),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return f
}

func (f *resetFixture) resetToken(t *testing.T, stageID uuid.UUID) string {
	t.Helper()

	token, err := f.codec.Sign(&service.Claims{Kind: service.TokenKindReset, DummyID: stageID.String()}, time.Hour)
	require.NoError(t, err)

	return token
}

func TestPasswordResetService_BeginReset_Success(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "a@x.com"}

	var staged *entity.StagedReset
	f.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(account, nil)
	f.resetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.StagedReset")).
		Run(func(_ context.Context, stage *entity.StagedReset) { staged = stage }).
		Return(nil)
	f.notifier.EXPECT().
		Send(ctx, "a@x.com", mock.Anything, mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, testLinkBaseURL+"/password/verify?token=")
		})).
		Return(nil)

	out, err := f.service.BeginReset(ctx, &usecase.BeginResetInput{Email: "A@X.COM"})

	require.NoError(t, err)
	require.NotNil(t, staged)
	assert.Equal(t, account.ID, staged.AccountID)
	assert.Equal(t, time.Hour, out.ExpiresIn)

	claims, err := f.codec.Verify(out.ResetToken)
	require.NoError(t, err)
	assert.Equal(t, service.TokenKindReset, claims.Kind)
	assert.Equal(t, staged.ID.String(), claims.DummyID)
}

func TestPasswordResetService_BeginReset_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		setup   func(f *resetFixture)
		wantErr error
	}{
		{
			name:    "malformed email",
			email:   "@x.com",
			setup:   func(*resetFixture) {},
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:  "unknown email",
			email: "ghost@x.com",
			setup: func(f *resetFixture) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@x.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name:  "stage insert fails",
			email: "a@x.com",
			setup: func(f *resetFixture) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(&entity.Account{ID: uuid.New()}, nil)
				f.resetRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full"))
			},
			wantErr: domainerrors.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResetFixture(t)
			tt.setup(f)

			out, err := f.service.BeginReset(context.Background(), &usecase.BeginResetInput{Email: tt.email})

			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPasswordResetService_VerifyReset(t *testing.T) {
	stage := &entity.StagedReset{ID: uuid.New(), AccountID: uuid.New()}

	t.Run("pending", func(t *testing.T) {
		f := newResetFixture(t)
		f.resetRepo.EXPECT().FindByID(mock.Anything, stage.ID).Return(stage, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, stage.AccountID).
			Return(&entity.Account{ID: stage.AccountID, Email: "a@x.com"}, nil)

		out, err := f.service.VerifyReset(context.Background(), f.resetToken(t, stage.ID))

		require.NoError(t, err)
		assert.Equal(t, stage.AccountID, out.AccountID)
		assert.Equal(t, "a@x.com", out.Email)
	})

	t.Run("stage gone", func(t *testing.T) {
		f := newResetFixture(t)
		f.resetRepo.EXPECT().FindByID(mock.Anything, stage.ID).Return(nil, repository.ErrStageNotFound)

		_, err := f.service.VerifyReset(context.Background(), f.resetToken(t, stage.ID))

		assert.ErrorIs(t, err, domainerrors.ErrStageNotFound)
	})

	t.Run("account deleted after begin", func(t *testing.T) {
		f := newResetFixture(t)
		f.resetRepo.EXPECT().FindByID(mock.Anything, stage.ID).Return(stage, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, stage.AccountID).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.VerifyReset(context.Background(), f.resetToken(t, stage.ID))

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("signup token", func(t *testing.T) {
		f := newResetFixture(t)
		token, err := f.codec.Sign(&service.Claims{Kind: service.TokenKindSignup, DummyMail: "a@x.com"}, time.Hour)
		require.NoError(t, err)

		_, err = f.service.VerifyReset(context.Background(), token)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("id is not a uuid", func(t *testing.T) {
		f := newResetFixture(t)
		token, err := f.codec.Sign(&service.Claims{Kind: service.TokenKindReset, DummyID: "42"}, time.Hour)
		require.NoError(t, err)

		_, err = f.service.VerifyReset(context.Background(), token)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestPasswordResetService_FinalizeReset_Success(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()
	stage := &entity.StagedReset{ID: uuid.New(), AccountID: uuid.New()}

	f.resetRepo.EXPECT().FindByID(ctx, stage.ID).Return(stage, nil)
	f.userRepo.EXPECT().FindByID(ctx, stage.AccountID).Return(&entity.Account{ID: stage.AccountID}, nil)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txResetRepo := mockRepo.NewMockResetStageRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().ResetStageRepo().Return(txResetRepo)
			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			txResetRepo.EXPECT().Delete(ctx, stage.ID).Return(nil).Once()
			txUserRepo.EXPECT().
				UpdateCredential(ctx, stage.AccountID, mock.MatchedBy(func(hash string) bool {
					return f.hasher.Check("new-password", hash)
				})).
				Return(nil).Once()

			return fn(mockFactory)
		})

	err := f.service.FinalizeReset(ctx, f.resetToken(t, stage.ID), &usecase.FinalizeResetInput{Password: "new-password"})

	require.NoError(t, err)
}

func TestPasswordResetService_FinalizeReset_Failures(t *testing.T) {
	stage := &entity.StagedReset{ID: uuid.New(), AccountID: uuid.New()}

	tests := []struct {
		name     string
		password string
		txErr    error
		wantErr  error
	}{
		{name: "empty password", password: "", wantErr: domainerrors.ErrInvalidInput},
		{name: "already used", password: "pw", txErr: repository.ErrStageNotFound, wantErr: domainerrors.ErrStageNotFound},
		{name: "account gone mid-flight", password: "pw", txErr: repository.ErrUserNotFound, wantErr: domainerrors.ErrNotFound},
		{name: "store failure", password: "pw", txErr: errors.New("timeout"), wantErr: domainerrors.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResetFixture(t)
			f.resetRepo.EXPECT().FindByID(mock.Anything, stage.ID).Return(stage, nil)
			f.userRepo.EXPECT().FindByID(mock.Anything, stage.AccountID).Return(&entity.Account{ID: stage.AccountID}, nil)
			if tt.txErr != nil {
				f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(tt.txErr)
			}

			err := f.service.FinalizeReset(context.Background(), f.resetToken(t, stage.ID), &usecase.FinalizeResetInput{Password: tt.password})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// A reset against the in-memory store changes what login accepts, and the token
// cannot be replayed.
func TestPasswordResetService_Scenario(t *testing.T) {
	cfg := newTestConfig()
	store := newMemStore()
	hasher := newTestHasher(t)
	codec := newTestCodec(t, cfg)
	ctx := context.Background()

	require.NoError(t, store.UserRepo().Create(ctx, &entity.Account{
		ID:           uuid.New(),
		Username:     "a",
		Email:        "a@x.com",
		PasswordHash: hashOf(t, hasher, "old"),
	}))

	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().Send(mock.Anything, "a@x.com", mock.Anything, mock.Anything).Return(nil).Once()

	resets := NewPasswordResetService(PasswordResetServiceParams{
		TxManager: store,
		UserRepo:  store.UserRepo(),
		ResetRepo: store.ResetStageRepo(),
		Codec:     codec,
		Hasher:    hasher,
		Notifier:  notifier,
		Metrics:   newNopMetrics(t),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	sessions := NewSessionService(SessionServiceParams{
		UserRepo: store.UserRepo(),
		Verifier: NewCredentialVerifier(CredentialVerifierParams{UserRepo: store.UserRepo(), Hasher: hasher}),
		Codec:    codec,
		Metrics:  newNopMetrics(t),
		Config:   cfg,
		Logger:   newDiscardLogger(),
	})

	begun, err := resets.BeginReset(ctx, &usecase.BeginResetInput{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, resets.FinalizeReset(ctx, begun.ResetToken, &usecase.FinalizeResetInput{Password: "new"}))

	err = resets.FinalizeReset(ctx, begun.ResetToken, &usecase.FinalizeResetInput{Password: "newer"})
	assert.ErrorIs(t, err, domainerrors.ErrStageNotFound)

	_, err = sessions.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "old"})
	assert.ErrorIs(t, err, domainerrors.ErrBadCredentials)

	out, err := sessions.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "new"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", out.Account.Email)
}
