package cache

import "strings"

const (
	GlobalKeyPrefix = "quizboard"
)

// GenerateCacheKey builds "quizboard:<service>:<object>:<id>", with optional
// params joined by "_" as a trailing segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	parts := []string{GlobalKeyPrefix, serviceName, objectType, identifier}
	if len(paramsKey) > 0 {
		parts = append(parts, strings.Join(paramsKey, "_"))
	}
	return strings.Join(parts, ":")
}
