// Package cache provides the TTL caches used for language documents when
// caching is enabled: an in-process LRU (Memory) and a shared Redis cache.
//
// Loader deduplicates concurrent misses for the same key with singleflight:
//
//	l := cache.NewLoader[[]byte](cache.NewMemory[[]byte](), time.Minute)
//	data, err := l.Load(ctx, "assets/i18n/es.json", fetch)
package cache
