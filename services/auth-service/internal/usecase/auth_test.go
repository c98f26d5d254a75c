package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/model"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/notifier"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/usecase"
)

func TestSignUpCreatesUnverifiedUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.auth.SignUp(ctx, usecase.SignUpParams{
		Email:    "Alice@Example.com",
		Password: "secret1",
		Name:     "Alice",
	})
	require.NoError(t, err)

	user, err := f.repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, model.RoleClient, user.Role)
	assert.False(t, user.EmailVerified)
	assert.NotEmpty(t, user.VerificationToken)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.Nil(t, user.Connects)
}

func TestSignUpFreelancerGetsStartingConnects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.auth.SignUp(ctx, usecase.SignUpParams{
		Email:    "bob@example.com",
		Password: "secret1",
		Name:     "Bob",
		Role:     "freelancer",
	})
	require.NoError(t, err)

	user, err := f.repo.GetUserByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleFreelancer, user.Role)
	require.NotNil(t, user.Connects)
	assert.Equal(t, model.FreelancerStartingConnects, *user.Connects)
}

func TestSignUpUnknownRoleFallsBackToClient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.auth.SignUp(ctx, usecase.SignUpParams{
		Email:    "carol@example.com",
		Password: "secret1",
		Name:     "Carol",
		Role:     "superuser",
	})
	require.NoError(t, err)

	user, err := f.repo.GetUserByEmail(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleClient, user.Role)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	params := usecase.SignUpParams{Email: "alice@example.com", Password: "secret1", Name: "Alice"}
	require.NoError(t, f.auth.SignUp(ctx, params))

	err := f.auth.SignUp(ctx, params)
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyInUse)

	// Same address, different casing.
	params.Email = "ALICE@example.com"
	err = f.auth.SignUp(ctx, params)
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyInUse)
}

func TestSignUpShortPassword(t *testing.T) {
	f := newFixture(t)

	err := f.auth.SignUp(context.Background(), usecase.SignUpParams{
		Email:    "alice@example.com",
		Password: "short",
		Name:     "Alice",
	})
	assert.ErrorIs(t, err, usecase.ErrPasswordTooShort)
}

func TestSignUpDispatchesVerificationEmail(t *testing.T) {
	f := newFixture(t)

	err := f.auth.SignUp(context.Background(), usecase.SignUpParams{
		Email:    "alice@example.com",
		Password: "secret1",
		Name:     "Alice",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return f.sink.count() == 1 }, time.Second, 10*time.Millisecond)

	notification := f.sink.notifications()[0]
	assert.Equal(t, "alice@example.com", notification.To)
	assert.Equal(t, notifier.TemplateVerifyEmail, notification.Template)
	assert.NotEmpty(t, notification.Context["token"])
}

func TestLogInUnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.LogIn(context.Background(), usecase.LogInParams{
		Email:    "nobody@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLogInWrongPassword(t *testing.T) {
	f := newFixture(t)
	f.signUpVerifiedUser(t, "alice@example.com", "secret1")

	_, err := f.auth.LogIn(context.Background(), usecase.LogInParams{
		Email:    "alice@example.com",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLogInUnverifiedEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.auth.SignUp(ctx, usecase.SignUpParams{
		Email:    "alice@example.com",
		Password: "secret1",
		Name:     "Alice",
	})
	require.NoError(t, err)

	_, err = f.auth.LogIn(ctx, usecase.LogInParams{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, usecase.ErrEmailNotVerified)
}

func TestLogInNeverIssuesTokensDirectly(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	result, err := f.auth.LogIn(ctx, usecase.LogInParams{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.True(t, result.Requires2FA)
	assert.Equal(t, user.ID.Hex(), result.UserID)

	// The only state after the password phase is the pending challenge.
	code := f.challengeCode(t, result.UserID)
	assert.Len(t, code, 6)

	session, err := f.sessions.GetLoginSession(ctx, result.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.Email)

	_, err = f.sessions.GetActiveSession(ctx, result.UserID)
	assert.Error(t, err)
}

func TestVerifyTwoFactorWrongCode(t *testing.T) {
	f := newFixture(t)
	f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	result, err := f.auth.LogIn(ctx, usecase.LogInParams{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	code := f.challengeCode(t, result.UserID)
	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	_, err = f.auth.VerifyTwoFactor(ctx, result.UserID, wrong)
	assert.ErrorIs(t, err, usecase.ErrInvalidOrExpiredCode)

	// A wrong guess does not consume the challenge.
	_, err = f.auth.VerifyTwoFactor(ctx, result.UserID, code)
	assert.NoError(t, err)
}

func TestVerifyTwoFactorExpiredCode(t *testing.T) {
	f := newFixture(t)
	f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	result, err := f.auth.LogIn(ctx, usecase.LogInParams{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	code := f.challengeCode(t, result.UserID)

	f.mr.FastForward(6 * time.Minute)

	_, err = f.auth.VerifyTwoFactor(ctx, result.UserID, code)
	assert.ErrorIs(t, err, usecase.ErrInvalidOrExpiredCode)
}

func TestVerifyTwoFactorCodeIsSingleUse(t *testing.T) {
	f := newFixture(t)
	f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	result, err := f.auth.LogIn(ctx, usecase.LogInParams{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	code := f.challengeCode(t, result.UserID)

	_, err = f.auth.VerifyTwoFactor(ctx, result.UserID, code)
	require.NoError(t, err)

	_, err = f.auth.VerifyTwoFactor(ctx, result.UserID, code)
	assert.ErrorIs(t, err, usecase.ErrInvalidOrExpiredCode)
}

func TestVerifyTwoFactorNewLoginSupersedesCode(t *testing.T) {
	f := newFixture(t)
	f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	params := usecase.LogInParams{Email: "alice@example.com", Password: "secret1"}

	first, err := f.auth.LogIn(ctx, params)
	require.NoError(t, err)
	firstCode := f.challengeCode(t, first.UserID)

	second, err := f.auth.LogIn(ctx, params)
	require.NoError(t, err)
	secondCode := f.challengeCode(t, second.UserID)

	if firstCode != secondCode {
		_, err = f.auth.VerifyTwoFactor(ctx, first.UserID, firstCode)
		assert.ErrorIs(t, err, usecase.ErrInvalidOrExpiredCode)
	}

	_, err = f.auth.VerifyTwoFactor(ctx, second.UserID, secondCode)
	assert.NoError(t, err)
}

func TestVerifyTwoFactorMissingLoginSession(t *testing.T) {
	f := newFixture(t)
	user := f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	// A challenge without its login session must not log anyone in.
	userID := user.ID.Hex()
	require.NoError(t, f.sessions.SaveChallenge(ctx, userID, "123456", time.Minute))

	_, err := f.auth.VerifyTwoFactor(ctx, userID, "123456")
	assert.ErrorIs(t, err, usecase.ErrSessionExpired)
}

func TestSocialLoginCreatesVerifiedAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.auth.SocialLogin(ctx, usecase.SocialLoginParams{
		Email:      "alice@example.com",
		Name:       "Alice",
		Provider:   "google",
		ProviderID: "google-sub-1",
	})
	require.NoError(t, err)
	assert.True(t, result.Requires2FA)

	user, err := f.repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, "google-sub-1", user.GoogleID)
	assert.Empty(t, user.PasswordHash)

	// Social accounts take the same second factor as password logins.
	tokens, err := f.auth.VerifyTwoFactor(ctx, result.UserID, f.challengeCode(t, result.UserID))
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestSocialLoginBackfillsExistingAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.auth.SignUp(ctx, usecase.SignUpParams{
		Email:    "alice@example.com",
		Password: "secret1",
		Name:     "Alice",
	}))

	_, err := f.auth.SocialLogin(ctx, usecase.SocialLoginParams{
		Email:      "alice@example.com",
		Provider:   "apple",
		ProviderID: "apple-sub-1",
	})
	require.NoError(t, err)

	user, err := f.repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "apple-sub-1", user.AppleID)
	assert.True(t, user.EmailVerified)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestSocialLoginUnsupportedProvider(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.SocialLogin(context.Background(), usecase.SocialLoginParams{
		Email:      "alice@example.com",
		Provider:   "github",
		ProviderID: "gh-1",
	})
	assert.ErrorIs(t, err, usecase.ErrUnsupportedProvider)
}

func TestPasswordLoginOnSocialOnlyAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.SocialLogin(ctx, usecase.SocialLoginParams{
		Email:      "alice@example.com",
		Provider:   "google",
		ProviderID: "google-sub-1",
	})
	require.NoError(t, err)

	_, err = f.auth.LogIn(ctx, usecase.LogInParams{
		Email:    "alice@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestFullLoginFlow(t *testing.T) {
	f := newFixture(t)
	f.signUpVerifiedUser(t, "alice@example.com", "secret1")
	ctx := context.Background()

	tokens := f.logInAndVerify(t, "alice@example.com", "secret1")
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	lookup, err := f.tokens.ValidateAccessToken(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", lookup.Email)
	assert.Equal(t, "client", lookup.Role)

	accessToken, err := f.tokens.RefreshToken(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEqual(t, tokens.AccessToken, accessToken)
}
