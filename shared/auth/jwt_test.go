package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbridgehq/taskbridge-api/shared/auth"
)

func testClaims(expiresIn time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    "taskbridge",
		Audience:  jwt.ClaimStrings{"taskbridge"},
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	jwtAuth := auth.NewJWTAuthenticator("taskbridge", "taskbridge")

	token, err := jwtAuth.GenerateToken(testClaims(time.Minute), "secret")
	require.NoError(t, err)

	parsed := &jwt.RegisteredClaims{}
	_, err = jwtAuth.ValidateTokenWithClaims(token, "secret", parsed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	jwtAuth := auth.NewJWTAuthenticator("taskbridge", "taskbridge")

	token, err := jwtAuth.GenerateToken(testClaims(time.Minute), "secret")
	require.NoError(t, err)

	_, err = jwtAuth.ValidateTokenWithClaims(token, "other-secret", &jwt.RegisteredClaims{})
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	jwtAuth := auth.NewJWTAuthenticator("taskbridge", "taskbridge")

	token, err := jwtAuth.GenerateToken(testClaims(-time.Minute), "secret")
	require.NoError(t, err)

	_, err = jwtAuth.ValidateTokenWithClaims(token, "secret", &jwt.RegisteredClaims{})
	assert.Error(t, err)
}

func TestValidateTokenWrongAudience(t *testing.T) {
	signer := auth.NewJWTAuthenticator("taskbridge", "taskbridge")
	verifier := auth.NewJWTAuthenticator("someone-else", "taskbridge")

	token, err := signer.GenerateToken(testClaims(time.Minute), "secret")
	require.NoError(t, err)

	_, err = verifier.ValidateTokenWithClaims(token, "secret", &jwt.RegisteredClaims{})
	assert.Error(t, err)
}

func TestValidateTokenRequiresExpiration(t *testing.T) {
	jwtAuth := auth.NewJWTAuthenticator("taskbridge", "taskbridge")

	claims := testClaims(time.Minute)
	claims.ExpiresAt = nil
	token, err := jwtAuth.GenerateToken(claims, "secret")
	require.NoError(t, err)

	_, err = jwtAuth.ValidateTokenWithClaims(token, "secret", &jwt.RegisteredClaims{})
	assert.Error(t, err)
}

func TestDecodeTokenAllowExpired(t *testing.T) {
	jwtAuth := auth.NewJWTAuthenticator("taskbridge", "taskbridge")

	token, err := jwtAuth.GenerateToken(testClaims(-time.Minute), "secret")
	require.NoError(t, err)

	parsed := &jwt.RegisteredClaims{}
	_, err = jwtAuth.DecodeTokenAllowExpired(token, "secret", parsed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.Subject)

	// The signature is still checked.
	_, err = jwtAuth.DecodeTokenAllowExpired(token, "other-secret", &jwt.RegisteredClaims{})
	assert.Error(t, err)
}
