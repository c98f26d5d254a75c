package store

import (
	"context"
	"errors"
	"time"
)

const refreshGrantKeyPrefix = "refresh"

// RefreshGrantStore owns the records that authorize refresh-token use. A
// grant's existence is the sole authority that its refresh token is still
// valid; the token's signature is necessary but not sufficient.
type RefreshGrantStore struct {
	store EphemeralStore
}

func NewRefreshGrantStore(store EphemeralStore) *RefreshGrantStore {
	return &RefreshGrantStore{store: store}
}

func refreshGrantKey(userID, grantID string) string {
	return refreshGrantKeyPrefix + ":" + userID + ":" + grantID
}

// Put records a fresh grant with the refresh-token lifetime. Grants for other
// tokens of the same user are untouched, so concurrent sessions coexist.
func (s *RefreshGrantStore) Put(ctx context.Context, userID, grantID string, ttl time.Duration) error {
	return s.store.Set(ctx, refreshGrantKey(userID, grantID), []byte("1"), ttl)
}

// Consume atomically takes the grant out of the store. It returns false when
// the grant is absent, which covers expiry, prior consumption, and forgery
// with a stale grant id alike. Of any number of concurrent calls for the same
// grant, at most one observes true.
func (s *RefreshGrantStore) Consume(ctx context.Context, userID, grantID string) (bool, error) {
	_, err := s.store.GetDel(ctx, refreshGrantKey(userID, grantID))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
