package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/config"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/model"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/repository"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/store"
	authtypes "github.com/taskbridgehq/taskbridge-api/services/auth-service/pkg/types"
	"github.com/taskbridgehq/taskbridge-api/shared/auth"
)

// TokenUsecase defines the business logic for token issuance, rotation, and
// session invalidation.
type TokenUsecase interface {
	// IssueTokens mints a fresh access/refresh pair for the user, records the
	// refresh grant, and writes the active session records.
	IssueTokens(ctx context.Context, user *model.User) (*authtypes.Tokens, error)

	// RefreshToken rotates: it consumes the refresh grant and mints a new
	// access token. The refresh token itself is single use.
	RefreshToken(ctx context.Context, refreshToken string) (string, error)

	// Logout invalidates the session behind an access token. Best effort; it
	// never returns an error to the caller.
	Logout(ctx context.Context, accessToken string)

	// ValidateAccessToken resolves a bare access token to its owner via the
	// token lookup record.
	ValidateAccessToken(ctx context.Context, accessToken string) (*store.TokenLookup, error)
}

var (
	// ErrInvalidRefreshToken deliberately collapses every refresh failure
	// (bad signature, expiry, consumed or unknown grant) into one opaque
	// kind so callers cannot tell which sub-case occurred.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidAccessToken  = errors.New("invalid access token")
)

type tokenUsecase struct {
	userRepo       repository.UserRepository
	sessions       *store.SessionStore
	grants         *store.RefreshGrantStore
	jwtAuth        auth.JWTAuthenticator
	logger         *zerolog.Logger
	authServiceCfg *config.AuthServiceConfig
}

// NewTokenUsecase creates a new instance of TokenUsecase.
func NewTokenUsecase(
	userRepo repository.UserRepository,
	sessions *store.SessionStore,
	grants *store.RefreshGrantStore,
	jwtAuth auth.JWTAuthenticator,
	logger *zerolog.Logger,
	authServiceCfg *config.AuthServiceConfig,
) TokenUsecase {
	return &tokenUsecase{
		userRepo:       userRepo,
		sessions:       sessions,
		grants:         grants,
		jwtAuth:        jwtAuth,
		logger:         logger,
		authServiceCfg: authServiceCfg,
	}
}

func (u *tokenUsecase) IssueTokens(ctx context.Context, user *model.User) (*authtypes.Tokens, error) {
	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, grantID, err := u.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	userID := user.ID.Hex()
	refreshTTL := u.authServiceCfg.Token.RefreshTokenExpiresIn

	// The grant record is the sole authority that this refresh token is
	// usable. Grants issued for other sessions of the same user stay intact.
	if err := u.grants.Put(ctx, userID, grantID, refreshTTL); err != nil {
		return nil, err
	}

	if err := u.writeActiveSession(ctx, user, accessToken); err != nil {
		return nil, err
	}

	return &authtypes.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *tokenUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims := &authtypes.RefreshTokenClaims{}
	if _, err := u.jwtAuth.ValidateTokenWithClaims(
		refreshToken,
		u.authServiceCfg.Token.RefreshTokenSecret,
		claims,
	); err != nil {
		return "", ErrInvalidRefreshToken
	}

	// Consume the grant before anything else can fail. Re-validating the user
	// first would hold the replay window open for the duration of a directory
	// lookup; instead we accept the narrow loss case where a valid token is
	// burned because its user vanished mid-flight.
	consumed, err := u.grants.Consume(ctx, claims.UserID, claims.GrantID)
	if err != nil {
		return "", err
	}
	if !consumed {
		return "", ErrInvalidRefreshToken
	}

	user, err := u.userRepo.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return "", err
	}

	if err := u.writeActiveSession(ctx, user, accessToken); err != nil {
		return "", err
	}

	return accessToken, nil
}

func (u *tokenUsecase) Logout(ctx context.Context, accessToken string) {
	claims := &authtypes.AccessTokenClaims{}
	if _, err := u.jwtAuth.DecodeTokenAllowExpired(
		accessToken,
		u.authServiceCfg.Token.AccessTokenSecret,
		claims,
	); err != nil {
		// Not our token; nothing to invalidate.
		return
	}

	if err := u.sessions.DeleteActiveSession(ctx, claims.UserID, accessToken); err != nil {
		u.logger.Error().Err(err).Msg("failed to delete session on logout")
	}
}

func (u *tokenUsecase) ValidateAccessToken(ctx context.Context, accessToken string) (*store.TokenLookup, error) {
	lookup, err := u.sessions.GetTokenLookup(ctx, accessToken)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrInvalidAccessToken
		}
		return nil, err
	}

	return lookup, nil
}

func (u *tokenUsecase) generateAccessToken(user *model.User) (string, error) {
	claims := authtypes.AccessTokenClaims{
		UserID:           user.ID.Hex(),
		Email:            user.Email,
		Role:             string(user.Role),
		RegisteredClaims: u.registeredClaims(user.ID.Hex(), u.authServiceCfg.Token.AccessTokenExpiresIn),
	}

	return u.jwtAuth.GenerateToken(claims, u.authServiceCfg.Token.AccessTokenSecret)
}

func (u *tokenUsecase) generateRefreshToken(user *model.User) (string, string, error) {
	grantID := uuid.NewString()

	claims := authtypes.RefreshTokenClaims{
		UserID:           user.ID.Hex(),
		GrantID:          grantID,
		RegisteredClaims: u.registeredClaims(user.ID.Hex(), u.authServiceCfg.Token.RefreshTokenExpiresIn),
	}

	token, err := u.jwtAuth.GenerateToken(claims, u.authServiceCfg.Token.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	return token, grantID, nil
}

func (u *tokenUsecase) writeActiveSession(ctx context.Context, user *model.User, accessToken string) error {
	return u.sessions.SaveActiveSession(ctx, store.ActiveSession{
		UserID:      user.ID.Hex(),
		Email:       user.Email,
		Role:        string(user.Role),
		AccessToken: accessToken,
		CreatedAt:   time.Now(),
	}, u.authServiceCfg.Token.AccessTokenExpiresIn)
}

func (u *tokenUsecase) registeredClaims(userID string, expiresIn time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	issuer := u.authServiceCfg.Token.Issuer

	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Audience:  jwt.ClaimStrings{issuer},
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
}
