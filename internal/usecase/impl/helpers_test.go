package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/infra/auth"
	mockSvc "gatehouse/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testLinkBaseURL = "https://gatehouse.test"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Signing: "test-signing-secret"},
		Auth: &config.AuthConfig{
			BcryptCost: bcrypt.MinCost,
			SessionTTL: 24 * time.Hour,
			SignupTTL:  24 * time.Hour,
			ResetTTL:   time.Hour,
		},
		Mail: &config.MailConfig{LinkBaseURL: testLinkBaseURL},
	}
}

func newTestCodec(t *testing.T, cfg *config.Config) service.TokenCodec {
	t.Helper()

	codec, err := auth.NewJWTCodec(cfg)
	require.NoError(t, err)

	return codec
}

func newTestHasher(t *testing.T) service.PasswordHasher {
	t.Helper()

	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	return hasher
}

// newNopMetrics accepts any Record call.
func newNopMetrics(t *testing.T) *mockSvc.MockAuthMetrics {
	metrics := mockSvc.NewMockAuthMetrics(t)
	metrics.EXPECT().Record(mock.Anything, mock.Anything).Maybe()

	return metrics
}

func hashOf(t *testing.T, hasher service.PasswordHasher, password string) string {
	t.Helper()

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	return hash
}

// memStore is an in-memory store for flow-level tests. Transactions run the callback
// directly and do not roll back.
type memStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]entity.Account
	signups  map[string]entity.StagedSignup
	resets   map[uuid.UUID]entity.StagedReset
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[uuid.UUID]entity.Account),
		signups:  make(map[string]entity.StagedSignup),
		resets:   make(map[uuid.UUID]entity.StagedReset),
	}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memStore) UserRepo() repository.UserRepository               { return memUsers{s} }
func (s *memStore) SignupStageRepo() repository.SignupStageRepository { return memSignups{s} }
func (s *memStore) ResetStageRepo() repository.ResetStageRepository   { return memResets{s} }

func (s *memStore) accountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.accounts)
}

func (s *memStore) signupCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.signups)
}

type memUsers struct{ s *memStore }

func (r memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &account, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, account := range r.s.accounts {
		if account.Email == email {
			return &account, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memUsers) Create(_ context.Context, account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.accounts {
		if existing.Email == account.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.s.accounts[account.ID] = *account

	return nil
}

func (r memUsers) UpdateBio(_ context.Context, id uuid.UUID, bio string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	account.Bio = bio
	r.s.accounts[id] = account

	return nil
}

func (r memUsers) UpdateCredential(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	account.PasswordHash = passwordHash
	r.s.accounts[id] = account

	return nil
}

type memSignups struct{ s *memStore }

func (r memSignups) FindByEmail(_ context.Context, email string) (*entity.StagedSignup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stage, ok := r.s.signups[email]
	if !ok {
		return nil, repository.ErrStageNotFound
	}

	return &stage, nil
}

func (r memSignups) Create(_ context.Context, stage *entity.StagedSignup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.signups[stage.Email]; ok {
		return repository.ErrDuplicateStage
	}
	r.s.signups[stage.Email] = *stage

	return nil
}

func (r memSignups) DeleteByEmail(_ context.Context, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.signups[email]; !ok {
		return repository.ErrStageNotFound
	}
	delete(r.s.signups, email)

	return nil
}

func (r memSignups) DeleteCreatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for email, stage := range r.s.signups {
		if stage.CreatedAt.Before(cutoff) {
			delete(r.s.signups, email)
			n++
		}
	}

	return n, nil
}

type memResets struct{ s *memStore }

func (r memResets) FindByID(_ context.Context, id uuid.UUID) (*entity.StagedReset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stage, ok := r.s.resets[id]
	if !ok {
		return nil, repository.ErrStageNotFound
	}

	return &stage, nil
}

func (r memResets) Create(_ context.Context, stage *entity.StagedReset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.resets[stage.ID] = *stage

	return nil
}

func (r memResets) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.resets[id]; !ok {
		return repository.ErrStageNotFound
	}
	delete(r.s.resets, id)

	return nil
}

func (r memResets) DeleteCreatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, stage := range r.s.resets {
		if stage.CreatedAt.Before(cutoff) {
			delete(r.s.resets, id)
			n++
		}
	}

	return n, nil
}
