package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for analysis report caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// DocumentKey derives a cache key from the extracted document text. Analysis
// is a pure function of the text, so identical documents share one entry.
func DocumentKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "clauselens:v1:" + hex.EncodeToString(hash[:])
}
