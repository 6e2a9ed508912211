// Package redis opens the optional Redis connection backing the shared
// language document cache, and exposes a readiness check and shutdown hook for it.
package redis
