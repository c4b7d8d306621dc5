package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studysupport/internal/cache"
	"studysupport/internal/domain"
)

// RedisSessionRepository implements domain.SessionRepository on top of the
// domain.Cache port. Sessions are stored as JSON under a per-session key and
// expire after the configured TTL.
type RedisSessionRepository struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewRedisSessionRepository creates a session repository with the given TTL.
func NewRedisSessionRepository(c domain.Cache, ttl time.Duration) domain.SessionRepository {
	return &RedisSessionRepository{cache: c, ttl: ttl}
}

func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := r.cache.Get(ctx, cache.SessionKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(id)
		}
		return nil, domain.NewInternalError("Failed to load session", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, domain.NewInternalError("Failed to decode stored session", err)
	}
	return &session, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("Failed to encode session", err)
	}
	if err := r.cache.Set(ctx, cache.SessionKey(session.ID), string(data), r.ttl); err != nil {
		return domain.NewInternalError("Failed to store session", err)
	}
	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, cache.SessionKey(id)); err != nil {
		return domain.NewInternalError("Failed to delete session", err)
	}
	return nil
}

// RedisAnswerKeyRepository implements domain.AnswerKeyRepository. Answer keys
// share the session TTL so grading stays possible for as long as the session
// that created the form.
type RedisAnswerKeyRepository struct {
	cache domain.Cache
	ttl   time.Duration
}

func NewRedisAnswerKeyRepository(c domain.Cache, ttl time.Duration) domain.AnswerKeyRepository {
	return &RedisAnswerKeyRepository{cache: c, ttl: ttl}
}

func (r *RedisAnswerKeyRepository) Get(ctx context.Context, formID string) (*domain.AnswerKey, error) {
	raw, err := r.cache.Get(ctx, cache.AnswerKeyKey(formID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewError(domain.CodeNotFound, "No answer key stored for form: "+formID, nil)
		}
		return nil, domain.NewInternalError("Failed to load answer key", err)
	}

	var key domain.AnswerKey
	if err := json.Unmarshal([]byte(raw), &key); err != nil {
		return nil, domain.NewInternalError("Failed to decode stored answer key", err)
	}
	return &key, nil
}

func (r *RedisAnswerKeyRepository) Save(ctx context.Context, key *domain.AnswerKey) error {
	data, err := json.Marshal(key)
	if err != nil {
		return domain.NewInternalError("Failed to encode answer key", err)
	}
	if err := r.cache.Set(ctx, cache.AnswerKeyKey(key.FormID), string(data), r.ttl); err != nil {
		return domain.NewInternalError("Failed to store answer key", err)
	}
	return nil
}
