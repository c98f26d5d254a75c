package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Key namespaces. Every record is keyed by a single string whose presence is
// the sole proof of the fact it represents.
const (
	twoFactorKeyPrefix    = "2fa"
	loginSessionKeyPrefix = "login"
	sessionKeyPrefix      = "session"
	tokenLookupKeyPrefix  = "token"
)

// LoginSession marks that password verification already succeeded for a user
// and a second-factor challenge is outstanding. It expires together with the
// challenge code; an OTP match without this record is not enough to log in.
type LoginSession struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// ActiveSession is the record of a currently authenticated session, distinct
// from the access token itself. It is overwritten on every refresh.
type ActiveSession struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	AccessToken string    `json:"access_token"`
	CreatedAt   time.Time `json:"created_at"`
}

// TokenLookup maps a bare access token to its owner for authorization checks
// at the gateway without re-parsing the token payload.
type TokenLookup struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// SessionStore owns the challenge, login-session, active-session, and
// token-lookup records.
type SessionStore struct {
	store EphemeralStore
}

func NewSessionStore(store EphemeralStore) *SessionStore {
	return &SessionStore{store: store}
}

func twoFactorKey(userID string) string {
	return twoFactorKeyPrefix + ":" + userID
}

func loginSessionKey(userID string) string {
	return loginSessionKeyPrefix + ":" + userID
}

func sessionKey(userID string) string {
	return sessionKeyPrefix + ":" + userID
}

func tokenLookupKey(accessToken string) string {
	return tokenLookupKeyPrefix + ":" + accessToken
}

// SaveChallenge stores a user's one-time code. Writing a new code silently
// supersedes any previous one: same key, overwritten value.
func (s *SessionStore) SaveChallenge(ctx context.Context, userID, code string, ttl time.Duration) error {
	return s.store.Set(ctx, twoFactorKey(userID), []byte(code), ttl)
}

// GetChallenge returns the live code for a user, or ErrKeyNotFound.
func (s *SessionStore) GetChallenge(ctx context.Context, userID string) (string, error) {
	data, err := s.store.Get(ctx, twoFactorKey(userID))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// SaveLoginSession stores the pending login marker alongside the challenge.
func (s *SessionStore) SaveLoginSession(ctx context.Context, session LoginSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode login session: %w", err)
	}

	return s.store.Set(ctx, loginSessionKey(session.UserID), data, ttl)
}

// GetLoginSession returns the pending login marker, or ErrKeyNotFound.
func (s *SessionStore) GetLoginSession(ctx context.Context, userID string) (*LoginSession, error) {
	data, err := s.store.Get(ctx, loginSessionKey(userID))
	if err != nil {
		return nil, err
	}

	var session LoginSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode login session: %w", err)
	}

	return &session, nil
}

// ConsumeChallenge deletes the challenge and the pending login marker in one
// call, so a verified code can never be replayed.
func (s *SessionStore) ConsumeChallenge(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, twoFactorKey(userID)); err != nil {
		return err
	}

	return s.store.Delete(ctx, loginSessionKey(userID))
}

// SaveActiveSession writes the session record and the access-token reverse
// lookup, both bounded by the access-token lifetime.
func (s *SessionStore) SaveActiveSession(ctx context.Context, session ActiveSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode active session: %w", err)
	}

	if err := s.store.Set(ctx, sessionKey(session.UserID), data, ttl); err != nil {
		return err
	}

	lookup, err := json.Marshal(TokenLookup{UserID: session.UserID, Email: session.Email, Role: session.Role})
	if err != nil {
		return fmt.Errorf("encode token lookup: %w", err)
	}

	return s.store.Set(ctx, tokenLookupKey(session.AccessToken), lookup, ttl)
}

// GetActiveSession returns the active session record, or ErrKeyNotFound.
func (s *SessionStore) GetActiveSession(ctx context.Context, userID string) (*ActiveSession, error) {
	data, err := s.store.Get(ctx, sessionKey(userID))
	if err != nil {
		return nil, err
	}

	var session ActiveSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode active session: %w", err)
	}

	return &session, nil
}

// GetTokenLookup resolves a bare access token, or ErrKeyNotFound.
func (s *SessionStore) GetTokenLookup(ctx context.Context, accessToken string) (*TokenLookup, error) {
	data, err := s.store.Get(ctx, tokenLookupKey(accessToken))
	if err != nil {
		return nil, err
	}

	var lookup TokenLookup
	if err := json.Unmarshal(data, &lookup); err != nil {
		return nil, fmt.Errorf("decode token lookup: %w", err)
	}

	return &lookup, nil
}

// DeleteActiveSession removes the session record and the token lookup for the
// given access token. Absent keys are a no-op.
func (s *SessionStore) DeleteActiveSession(ctx context.Context, userID, accessToken string) error {
	if err := s.store.Delete(ctx, tokenLookupKey(accessToken)); err != nil {
		return err
	}

	return s.store.Delete(ctx, sessionKey(userID))
}
