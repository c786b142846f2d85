package redis

import (
	"sayyes-srv/internal/gallery/repository"
	"sayyes-srv/pkg/log"
	pkgRedis "sayyes-srv/pkg/redis"
)

type implCurateCache struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory function
func New(redis pkgRedis.IRedis, l log.Logger) repository.CurateCache {
	return &implCurateCache{
		redis: redis,
		l:     l,
	}
}
