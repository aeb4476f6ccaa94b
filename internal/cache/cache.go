package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// EnrichmentKey derives a cache key for an LLM enrichment call from the
// provider, model, and full prompt. Identical prompts hit the same entry.
func EnrichmentKey(provider, model, prompt string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + prompt))
	return "clauseguard:v1:" + hex.EncodeToString(hash[:])
}
