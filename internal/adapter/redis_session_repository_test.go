package adapter

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"studysupport/internal/cache"
	"studysupport/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessionRepository_GetSave(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewRedisSessionRepository(NewRedisCacheAdapter(db), time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID: "01HZXSESSION",
		Document: &domain.Document{
			Filename: "notes.txt",
			Text:     "operating systems schedule processes",
		},
	}
	data, err := json.Marshal(session)
	require.NoError(t, err)

	key := cache.SessionKey(session.ID)
	mock.ExpectSet(key, string(data), time.Hour).SetVal("OK")
	require.NoError(t, repo.Save(ctx, session))

	mock.ExpectGet(key).SetVal(string(data))
	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, "notes.txt", got.Document.Filename)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSessionRepository_GetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewRedisSessionRepository(NewRedisCacheAdapter(db), time.Hour)

	mock.ExpectGet(cache.SessionKey("missing")).RedisNil()

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestRedisAnswerKeyRepository_RoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewRedisAnswerKeyRepository(NewRedisCacheAdapter(db), time.Hour)
	ctx := context.Background()

	answerKey := &domain.AnswerKey{
		FormID:         "form-123",
		Title:          "StudySupport Quiz",
		QuestionTitles: []string{"What does CPU stand for?"},
		CorrectAnswers: []string{"Central Processing Unit"},
	}
	data, err := json.Marshal(answerKey)
	require.NoError(t, err)

	key := cache.AnswerKeyKey(answerKey.FormID)
	mock.ExpectSet(key, string(data), time.Hour).SetVal("OK")
	require.NoError(t, repo.Save(ctx, answerKey))

	mock.ExpectGet(key).SetVal(string(data))
	got, err := repo.Get(ctx, answerKey.FormID)
	require.NoError(t, err)
	assert.Equal(t, answerKey.CorrectAnswers, got.CorrectAnswers)

	require.NoError(t, mock.ExpectationsWereMet())
}
