// Package config reads the site configuration from environment variables,
// optionally seeded from .env files.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	langs, _ := cfg.Languages()
//
// Every key has a default except the ones a chosen backend needs:
// LANG_DIR for LANG_SOURCE=dir, LANG_BASE_URL for http, STORAGE_BUCKET for
// s3 and REDIS_URL for LANG_CACHE=redis.
package config
