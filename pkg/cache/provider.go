package cache

import (
	"github.com/go-arcade/ats/pkg/log"
	"github.com/google/wire"
)

const defaultLocalMaxBytes = 32 * 1024 * 1024

var ProviderSet = wire.NewSet(ProvideICache)

// ProvideICache returns a redis backed cache, falling back to an in-process
// fastcache when redis is disabled or unreachable.
func ProvideICache(conf Redis) (ICache, func()) {
	local := func(reason string, kv ...any) (ICache, func()) {
		log.Warnw(reason+", using in-process cache", kv...)
		return NewFastCache(FastCacheConfig{MaxBytes: defaultLocalMaxBytes}), func() {}
	}
	if !conf.Enable {
		return local("redis disabled")
	}
	client, err := NewRedis(conf)
	if err != nil {
		return local("redis unavailable", "error", err)
	}
	rc := NewRedisCache(client)
	return rc, func() {
		if err := rc.Close(); err != nil {
			log.Warnw("failed to close redis", "error", err)
		}
	}
}
