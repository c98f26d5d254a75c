package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/config"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/model"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/notifier"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/store"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/usecase"
	authtypes "github.com/taskbridgehq/taskbridge-api/services/auth-service/pkg/types"
	"github.com/taskbridgehq/taskbridge-api/shared/auth"
)

// fakeUserRepo is an in-memory UserRepository with the same error contract as
// the mongo implementation.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func cloneUser(user *model.User) *model.User {
	clone := *user
	if user.Connects != nil {
		connects := *user.Connects
		clone.Connects = &connects
	}
	return &clone
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	email := strings.ToLower(user.Email)
	for _, existing := range f.users {
		if existing.Email == email {
			return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
		}
	}

	now := time.Now()
	user.ID = bson.NewObjectID()
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now

	f.users[user.ID.Hex()] = cloneUser(user)
	return cloneUser(user), nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return cloneUser(user), nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return f.find(func(user *model.User) bool {
		return user.Email == strings.ToLower(email)
	})
}

func (f *fakeUserRepo) GetUserByVerificationToken(_ context.Context, token string) (*model.User, error) {
	return f.find(func(user *model.User) bool {
		return token != "" && user.VerificationToken == token
	})
}

func (f *fakeUserRepo) GetUserByPasswordResetToken(_ context.Context, token string) (*model.User, error) {
	return f.find(func(user *model.User) bool {
		return token != "" && user.PasswordResetToken == token
	})
}

func (f *fakeUserRepo) SaveUser(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.ID.Hex()]; !ok {
		return nil, mongo.ErrNoDocuments
	}

	user.UpdatedAt = time.Now()
	f.users[user.ID.Hex()] = cloneUser(user)
	return cloneUser(user), nil
}

func (f *fakeUserRepo) find(match func(*model.User) bool) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if match(user) {
			return cloneUser(user), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// recordingSink captures dispatched notifications instead of mailing them.
type recordingSink struct {
	mu   sync.Mutex
	sent []notifier.Notification
}

func (s *recordingSink) Send(_ context.Context, notification notifier.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, notification)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func (s *recordingSink) notifications() []notifier.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notifier.Notification(nil), s.sent...)
}

const testIssuer = "taskbridge"

type fixture struct {
	repo         *fakeUserRepo
	sink         *recordingSink
	mr           *miniredis.Miniredis
	sessions     *store.SessionStore
	grants       *store.RefreshGrantStore
	cfg          *config.AuthServiceConfig
	auth         usecase.AuthUsecase
	tokens       usecase.TokenUsecase
	verification usecase.VerificationUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	kv := store.NewRedisStore(client)
	sessions := store.NewSessionStore(kv)
	grants := store.NewRefreshGrantStore(kv)
	repo := newFakeUserRepo()

	sink := &recordingSink{}
	logger := zerolog.Nop()
	dispatcher := notifier.NewDispatcher(sink, &logger, 16, 1)
	t.Cleanup(dispatcher.Close)

	cfg := &config.AuthServiceConfig{
		Token: config.TokenConfig{
			Issuer:                testIssuer,
			AccessTokenSecret:     "access-secret",
			AccessTokenExpiresIn:  15 * time.Minute,
			RefreshTokenSecret:    "refresh-secret",
			RefreshTokenExpiresIn: time.Hour,
			TwoFactorExpiresIn:    5 * time.Minute,
		},
	}

	jwtAuth := auth.NewJWTAuthenticator(testIssuer, testIssuer)
	tokens := usecase.NewTokenUsecase(repo, sessions, grants, jwtAuth, &logger, cfg)

	return &fixture{
		repo:         repo,
		sink:         sink,
		mr:           mr,
		sessions:     sessions,
		grants:       grants,
		cfg:          cfg,
		auth:         usecase.NewAuthUsecase(repo, sessions, tokens, dispatcher, cfg),
		tokens:       tokens,
		verification: usecase.NewVerificationUsecase(repo, dispatcher),
	}
}

// signUpVerifiedUser registers a user and completes email verification.
func (f *fixture) signUpVerifiedUser(t *testing.T, email, password string) *model.User {
	t.Helper()
	ctx := context.Background()

	err := f.auth.SignUp(ctx, usecase.SignUpParams{
		Email:    email,
		Password: password,
		Name:     "Test User",
	})
	require.NoError(t, err)

	user, err := f.repo.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	require.NoError(t, f.verification.VerifyEmail(ctx, user.VerificationToken))

	user, err = f.repo.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	return user
}

// challengeCode reads the pending 2FA code straight out of the store.
func (f *fixture) challengeCode(t *testing.T, userID string) string {
	t.Helper()

	code, err := f.mr.Get("2fa:" + userID)
	require.NoError(t, err)
	return code
}

// logInAndVerify completes the full password plus 2FA login.
func (f *fixture) logInAndVerify(t *testing.T, email, password string) *authtypes.Tokens {
	t.Helper()
	ctx := context.Background()

	result, err := f.auth.LogIn(ctx, usecase.LogInParams{Email: email, Password: password})
	require.NoError(t, err)
	require.True(t, result.Requires2FA)

	tokens, err := f.auth.VerifyTwoFactor(ctx, result.UserID, f.challengeCode(t, result.UserID))
	require.NoError(t, err)
	return tokens
}
