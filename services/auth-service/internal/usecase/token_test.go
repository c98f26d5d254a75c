package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/usecase"
	authtypes "github.com/taskbridgehq/taskbridge-api/services/auth-service/pkg/types"
	"github.com/taskbridgehq/taskbridge-api/shared/auth"
)

func TestIssueTokensWritesSessionState(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	tokens, err := f.tokens.IssueTokens(ctx, user)
	require.NoError(t, err)

	jwtAuth := auth.NewJWTAuthenticator(testIssuer, testIssuer)

	accessClaims := &authtypes.AccessTokenClaims{}
	_, err = jwtAuth.ValidateTokenWithClaims(tokens.AccessToken, "access-secret", accessClaims)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), accessClaims.UserID)
	assert.Equal(t, "alice@example.com", accessClaims.Email)
	assert.Equal(t, "client", accessClaims.Role)

	refreshClaims := &authtypes.RefreshTokenClaims{}
	_, err = jwtAuth.ValidateTokenWithClaims(tokens.RefreshToken, "refresh-secret", refreshClaims)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), refreshClaims.UserID)
	assert.NotEmpty(t, refreshClaims.GrantID)

	session, err := f.sessions.GetActiveSession(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, tokens.AccessToken, session.AccessToken)

	consumed, err := f.grants.Consume(ctx, user.ID.Hex(), refreshClaims.GrantID)
	require.NoError(t, err)
	assert.True(t, consumed)
}

func TestRefreshTokenIsSingleUse(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	tokens, err := f.tokens.IssueTokens(ctx, user)
	require.NoError(t, err)

	accessToken, err := f.tokens.RefreshToken(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	_, err = f.tokens.RefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, usecase.ErrInvalidRefreshToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	tokens, err := f.tokens.IssueTokens(ctx, user)
	require.NoError(t, err)

	// An access token is signed with a different secret and must never pass
	// as a refresh token.
	_, err = f.tokens.RefreshToken(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, usecase.ErrInvalidRefreshToken)
}

func TestRefreshTokenRejectsForgedGrant(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	// A well-formed token whose grant was never recorded is worthless.
	jwtAuth := auth.NewJWTAuthenticator(testIssuer, testIssuer)
	now := time.Now()
	forged, err := jwtAuth.GenerateToken(authtypes.RefreshTokenClaims{
		UserID:  user.ID.Hex(),
		GrantID: "never-recorded",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testIssuer},
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}, "refresh-secret")
	require.NoError(t, err)

	_, err = f.tokens.RefreshToken(ctx, forged)
	assert.ErrorIs(t, err, usecase.ErrInvalidRefreshToken)
}

func TestRefreshTokenExpiredGrant(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	tokens, err := f.tokens.IssueTokens(ctx, user)
	require.NoError(t, err)

	f.mr.FastForward(2 * time.Hour)

	_, err = f.tokens.RefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, usecase.ErrInvalidRefreshToken)
}

func TestConcurrentRefreshSingleWinner(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	tokens, err := f.tokens.IssueTokens(ctx, user)
	require.NoError(t, err)

	const callers = 8

	var wg sync.WaitGroup
	wins := make(chan string, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if accessToken, err := f.tokens.RefreshToken(ctx, tokens.RefreshToken); err == nil {
				wins <- accessToken
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1)
}

func TestConcurrentSessionsRefreshIndependently(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	first, err := f.tokens.IssueTokens(ctx, user)
	require.NoError(t, err)
	second, err := f.tokens.IssueTokens(ctx, user)
	require.NoError(t, err)

	_, err = f.tokens.RefreshToken(ctx, first.RefreshToken)
	require.NoError(t, err)

	_, err = f.tokens.RefreshToken(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestLogoutInvalidatesAccessToken(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	tokens, err := f.tokens.IssueTokens(ctx, user)
	require.NoError(t, err)

	_, err = f.tokens.ValidateAccessToken(ctx, tokens.AccessToken)
	require.NoError(t, err)

	f.tokens.Logout(ctx, tokens.AccessToken)

	_, err = f.tokens.ValidateAccessToken(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, usecase.ErrInvalidAccessToken)

	_, err = f.sessions.GetActiveSession(ctx, user.ID.Hex())
	assert.Error(t, err)
}

func TestLogoutIsIdempotent(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	tokens, err := f.tokens.IssueTokens(ctx, user)
	require.NoError(t, err)

	f.tokens.Logout(ctx, tokens.AccessToken)
	f.tokens.Logout(ctx, tokens.AccessToken)
	f.tokens.Logout(ctx, "not-even-a-token")
}

func TestValidateUnknownAccessToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.tokens.ValidateAccessToken(context.Background(), "unknown")
	assert.ErrorIs(t, err, usecase.ErrInvalidAccessToken)
}
