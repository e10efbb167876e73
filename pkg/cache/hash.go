package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey derives a cache key of the form "prefix:hash(parts...)".
// The keyer calls it with "layout" or "artifact" prefixes; parts are
// the graph/layout hash plus the key options, JSON-marshaled so the
// same settings always hash the same way.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes the SHA-256 content hash of data as a 64-character hex
// string. The runner uses it over the canonical graph document, so the
// hash depends only on the graph's structure and layout settings, not
// on any computed coordinates.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
