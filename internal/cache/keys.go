package cache

import "strings"

const (
	GlobalKeyPrefix = "studysupport"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SessionKey is the cache key holding one session's serialized state.
func SessionKey(sessionID string) string {
	return GenerateCacheKey("session", "state", sessionID)
}

// AnswerKeyKey is the cache key holding the grading key of an exported form.
func AnswerKeyKey(formID string) string {
	return GenerateCacheKey("forms", "answer_key", formID)
}

// EmbeddingKey is the cache key holding one text's embedding vector.
func EmbeddingKey(source, textHash string) string {
	return GenerateCacheKey("embedding", source, textHash)
}
