package redis

import "fmt"

const defaultKeyPrefix = "casino"

// documentKey returns the Redis key for a stored document
func documentKey(prefix, key string) string {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return fmt.Sprintf("%s:doc:%s", prefix, key)
}
