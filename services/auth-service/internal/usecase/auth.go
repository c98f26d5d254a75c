package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/config"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/model"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/notifier"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/repository"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/store"
	authtypes "github.com/taskbridgehq/taskbridge-api/services/auth-service/pkg/types"
	"github.com/taskbridgehq/taskbridge-api/shared/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	SignUp(ctx context.Context, params SignUpParams) error
	LogIn(ctx context.Context, params LogInParams) (*LoginResult, error)
	VerifyTwoFactor(ctx context.Context, userID, code string) (*authtypes.Tokens, error)
	SocialLogin(ctx context.Context, params SocialLoginParams) (*LoginResult, error)
}

// SignUpParams defines the parameters for user registration.
type SignUpParams struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// LogInParams defines the parameters for the password phase of login.
type LogInParams struct {
	Email    string
	Password string
}

// SocialLoginParams defines the parameters for federated login.
type SocialLoginParams struct {
	Email      string
	Name       string
	Provider   string
	ProviderID string
}

// LoginResult is returned by LogIn and SocialLogin. Tokens are never issued
// at this stage: the second factor is mandatory for every account, so both
// flows end with a pending challenge.
type LoginResult struct {
	Requires2FA bool
	UserID      string
}

const minPasswordLength = 6

var (
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailNotVerified     = errors.New("email not verified")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired 2FA code")
	ErrSessionExpired       = errors.New("login session expired")
	ErrUserNotFound         = errors.New("user not found")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUnsupportedProvider  = errors.New("unsupported social provider")
)

type authUsecase struct {
	userRepo       repository.UserRepository
	sessions       *store.SessionStore
	tokens         TokenUsecase
	dispatcher     *notifier.Dispatcher
	authServiceCfg *config.AuthServiceConfig
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	userRepo repository.UserRepository,
	sessions *store.SessionStore,
	tokens TokenUsecase,
	dispatcher *notifier.Dispatcher,
	authServiceCfg *config.AuthServiceConfig,
) AuthUsecase {
	return &authUsecase{
		userRepo:       userRepo,
		sessions:       sessions,
		tokens:         tokens,
		dispatcher:     dispatcher,
		authServiceCfg: authServiceCfg,
	}
}

func (u *authUsecase) SignUp(ctx context.Context, params SignUpParams) error {
	if len(params.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	email := strings.ToLower(params.Email)

	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyInUse
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	role := model.RoleClient
	if params.Role != "" {
		role = model.UserRole(params.Role)
		if !role.Valid() {
			role = model.RoleClient
		}
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return err
	}

	verificationToken := uuid.NewString()

	user := &model.User{
		Email:             email,
		PasswordHash:      passwordHash,
		Name:              params.Name,
		Role:              role,
		EmailVerified:     false,
		VerificationToken: verificationToken,
		TwoFactorEnabled:  true,
	}
	if role == model.RoleFreelancer {
		connects := model.FreelancerStartingConnects
		user.Connects = &connects
	}

	if _, err := u.userRepo.CreateUser(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailAlreadyInUse
		}
		return err
	}

	u.dispatcher.Dispatch(notifier.Notification{
		To:       user.Email,
		Subject:  "Verify your email",
		Template: notifier.TemplateVerifyEmail,
		Context: map[string]string{
			"name":  user.Name,
			"token": verificationToken,
		},
	})

	return nil
}

func (u *authUsecase) LogIn(ctx context.Context, params LogInParams) (*LoginResult, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, strings.ToLower(params.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Social-only accounts have no hash; fail the same way as a bad password
	// so callers cannot probe which accounts exist or how they authenticate.
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	return u.beginTwoFactorChallenge(ctx, user)
}

func (u *authUsecase) VerifyTwoFactor(ctx context.Context, userID, code string) (*authtypes.Tokens, error) {
	storedCode, err := u.sessions.GetChallenge(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrInvalidOrExpiredCode
		}
		return nil, err
	}

	// Exact string comparison: codes keep their leading zeros.
	if storedCode != code {
		return nil, ErrInvalidOrExpiredCode
	}

	// The code alone is not proof of login. The pending login session is the
	// record that password verification succeeded; if it is gone the two
	// stores drifted apart and the whole login must be redone.
	if _, err := u.sessions.GetLoginSession(ctx, userID); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	if err := u.sessions.ConsumeChallenge(ctx, userID); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return u.tokens.IssueTokens(ctx, user)
}

func (u *authUsecase) SocialLogin(ctx context.Context, params SocialLoginParams) (*LoginResult, error) {
	if params.Provider != "google" && params.Provider != "apple" {
		return nil, ErrUnsupportedProvider
	}

	email := strings.ToLower(params.Email)

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		user = &model.User{
			Email:            email,
			Name:             params.Name,
			Role:             model.RoleClient,
			EmailVerified:    true,
			TwoFactorEnabled: true,
		}
		setProviderID(user, params.Provider, params.ProviderID)

		if user, err = u.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}

	case err != nil:
		return nil, err

	default:
		setProviderID(user, params.Provider, params.ProviderID)
		// A linked provider proves inbox ownership, and every account takes
		// the mandatory second factor.
		user.EmailVerified = true
		user.TwoFactorEnabled = true

		if user, err = u.userRepo.SaveUser(ctx, user); err != nil {
			return nil, err
		}
	}

	// A linked social identity still passes the same second factor as
	// password login; it never short-circuits straight to tokens.
	return u.beginTwoFactorChallenge(ctx, user)
}

// beginTwoFactorChallenge writes the challenge code and the pending login
// session under the same deadline, then dispatches the code out of band.
func (u *authUsecase) beginTwoFactorChallenge(ctx context.Context, user *model.User) (*LoginResult, error) {
	code, err := generateTwoFactorCode()
	if err != nil {
		return nil, err
	}

	userID := user.ID.Hex()
	ttl := u.authServiceCfg.Token.TwoFactorExpiresIn

	if err := u.sessions.SaveChallenge(ctx, userID, code, ttl); err != nil {
		return nil, err
	}

	if err := u.sessions.SaveLoginSession(ctx, store.LoginSession{
		UserID:   userID,
		Email:    user.Email,
		Verified: false,
	}, ttl); err != nil {
		return nil, err
	}

	u.dispatcher.Dispatch(notifier.Notification{
		To:       user.Email,
		Subject:  "Your sign-in code",
		Template: notifier.TemplateTwoFactorCode,
		Context: map[string]string{
			"name": user.Name,
			"code": code,
		},
	})

	return &LoginResult{Requires2FA: true, UserID: userID}, nil
}

func setProviderID(user *model.User, provider, providerID string) {
	switch provider {
	case "google":
		if user.GoogleID == "" {
			user.GoogleID = providerID
		}
	case "apple":
		if user.AppleID == "" {
			user.AppleID = providerID
		}
	}
}

// generateTwoFactorCode returns a 6-digit numeric code as a string, keeping
// leading zeros.
func generateTwoFactorCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
