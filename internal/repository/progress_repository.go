package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crypto_compass_backend/internal/model"
)

const (
	progressKeyPrefix   = "crypto_compass_test_progress:"
	lastResultKeyPrefix = "crypto_compass_last_result:"

	DefaultProgressTTL = 24 * time.Hour
)

// ProgressRepository persists in-progress tests and the last result of
// each session.
type ProgressRepository struct {
	Store KVStore
	TTL   time.Duration
	now   func() time.Time
}

func NewProgressRepository(store KVStore, ttl time.Duration) *ProgressRepository {
	if ttl <= 0 {
		ttl = DefaultProgressTTL
	}
	return &ProgressRepository{Store: store, TTL: ttl, now: time.Now}
}

func progressKey(sessionID string) string   { return progressKeyPrefix + sessionID }
func lastResultKey(sessionID string) string { return lastResultKeyPrefix + sessionID }

func (r *ProgressRepository) SaveProgress(ctx context.Context, sessionID string, p model.TestProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	// The store TTL only reclaims space; staleness is judged from the
	// embedded timestamp on load.
	return r.Store.Set(ctx, progressKey(sessionID), string(data), r.TTL+time.Hour)
}

// LoadProgress returns the saved progress, or nil when there is none.
// Blobs that cannot be decoded or are older than TTL are purged and
// reported as absent.
func (r *ProgressRepository) LoadProgress(ctx context.Context, sessionID string) (*model.TestProgress, error) {
	key := progressKey(sessionID)
	raw, err := r.Store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p model.TestProgress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		_ = r.Store.Del(ctx, key)
		return nil, nil
	}
	if r.now().Sub(time.UnixMilli(p.Timestamp)) > r.TTL {
		_ = r.Store.Del(ctx, key)
		return nil, nil
	}
	if p.Answers == nil {
		p.Answers = model.AnswerSet{}
	}
	return &p, nil
}

func (r *ProgressRepository) ClearProgress(ctx context.Context, sessionID string) error {
	return r.Store.Del(ctx, progressKey(sessionID))
}

func (r *ProgressRepository) SaveLastResult(ctx context.Context, sessionID string, res model.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return r.Store.Set(ctx, lastResultKey(sessionID), string(data), 0)
}

// LoadLastResult returns nil when the session has no readable result.
func (r *ProgressRepository) LoadLastResult(ctx context.Context, sessionID string) (*model.Result, error) {
	key := lastResultKey(sessionID)
	raw, err := r.Store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var res model.Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		_ = r.Store.Del(ctx, key)
		return nil, nil
	}
	return &res, nil
}

func (r *ProgressRepository) ClearLastResult(ctx context.Context, sessionID string) error {
	return r.Store.Del(ctx, lastResultKey(sessionID))
}
