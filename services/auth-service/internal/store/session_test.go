package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/store"
)

func TestChallengeOverwriteSupersedes(t *testing.T) {
	kv, _ := newTestStore(t)
	sessions := store.NewSessionStore(kv)
	ctx := context.Background()

	require.NoError(t, sessions.SaveChallenge(ctx, "u1", "111111", time.Minute))
	require.NoError(t, sessions.SaveChallenge(ctx, "u1", "222222", time.Minute))

	code, err := sessions.GetChallenge(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "222222", code)
}

func TestChallengeExpires(t *testing.T) {
	kv, mr := newTestStore(t)
	sessions := store.NewSessionStore(kv)
	ctx := context.Background()

	require.NoError(t, sessions.SaveChallenge(ctx, "u1", "123456", 5*time.Minute))
	mr.FastForward(6 * time.Minute)

	_, err := sessions.GetChallenge(ctx, "u1")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestConsumeChallengeRemovesBothRecords(t *testing.T) {
	kv, _ := newTestStore(t)
	sessions := store.NewSessionStore(kv)
	ctx := context.Background()

	require.NoError(t, sessions.SaveChallenge(ctx, "u1", "123456", time.Minute))
	require.NoError(t, sessions.SaveLoginSession(ctx, store.LoginSession{
		UserID: "u1",
		Email:  "u1@example.com",
	}, time.Minute))

	require.NoError(t, sessions.ConsumeChallenge(ctx, "u1"))

	_, err := sessions.GetChallenge(ctx, "u1")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	_, err = sessions.GetLoginSession(ctx, "u1")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestActiveSessionWritesTokenLookup(t *testing.T) {
	kv, _ := newTestStore(t)
	sessions := store.NewSessionStore(kv)
	ctx := context.Background()

	err := sessions.SaveActiveSession(ctx, store.ActiveSession{
		UserID:      "u1",
		Email:       "u1@example.com",
		Role:        "client",
		AccessToken: "token-1",
		CreatedAt:   time.Now(),
	}, time.Minute)
	require.NoError(t, err)

	session, err := sessions.GetActiveSession(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", session.AccessToken)

	lookup, err := sessions.GetTokenLookup(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", lookup.UserID)
	assert.Equal(t, "u1@example.com", lookup.Email)
	assert.Equal(t, "client", lookup.Role)
}

func TestDeleteActiveSessionRemovesBothRecords(t *testing.T) {
	kv, _ := newTestStore(t)
	sessions := store.NewSessionStore(kv)
	ctx := context.Background()

	err := sessions.SaveActiveSession(ctx, store.ActiveSession{
		UserID:      "u1",
		Email:       "u1@example.com",
		Role:        "client",
		AccessToken: "token-1",
		CreatedAt:   time.Now(),
	}, time.Minute)
	require.NoError(t, err)

	require.NoError(t, sessions.DeleteActiveSession(ctx, "u1", "token-1"))

	_, err = sessions.GetActiveSession(ctx, "u1")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	_, err = sessions.GetTokenLookup(ctx, "token-1")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestDeleteActiveSessionIsIdempotent(t *testing.T) {
	kv, _ := newTestStore(t)
	sessions := store.NewSessionStore(kv)
	ctx := context.Background()

	assert.NoError(t, sessions.DeleteActiveSession(ctx, "u1", "never-issued"))
}
