package cache

import "time"

// BytesCache stores serialized simulation results under string keys with a
// per-entry TTL. A zero TTL means the entry never expires.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
