package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbridgehq/taskbridge-api/shared/security"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	ok, err := security.VerifyPassword("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)

	ok, err := security.VerifyPassword("not-the-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := security.HashPassword("secret1")
	require.NoError(t, err)

	second, err := security.HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
