package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mkravets/adoptlens/internal/model"
)

// Cache stores parsed tables for the lifetime of a session so repeat
// interactions against an unchanged file skip the parse.
type Cache interface {
	Get(key string) (model.Table, bool)
	Set(key string, table model.Table, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Key derives a cache key from a dataset path and its modification time, so
// an edited file never serves stale rows.
func Key(path string, modTime time.Time) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", path, modTime.UnixNano())))
	return "adoptlens:v1:" + hex.EncodeToString(hash[:])
}
