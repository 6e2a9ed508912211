package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/panampa98/portfolio/internal/config"
	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/site"
	"github.com/panampa98/portfolio/pkg/cache"
	"github.com/panampa98/portfolio/pkg/i18n"
	"github.com/panampa98/portfolio/pkg/redis"
	"github.com/panampa98/portfolio/pkg/storage"
	"github.com/panampa98/portfolio/ui"
)

// runtime is the wired object graph shared by the commands.
type runtime struct {
	langs   portfolio.Languages
	catalog *i18n.Catalog
	site    *site.Site
	redis   goredis.UniversalClient
	bucket  *storage.Bucket
	closers []func(context.Context) error
}

func (rt *runtime) Close(ctx context.Context) error {
	var errs []error
	for _, fn := range rt.closers {
		errs = append(errs, fn(ctx))
	}
	return errors.Join(errs...)
}

func wire(ctx context.Context, cfg *config.Config, log *slog.Logger) (*runtime, error) {
	langs, err := cfg.Languages()
	if err != nil {
		return nil, err
	}
	rt := &runtime{langs: langs}

	if cfg.Storage.Bucket != "" {
		if rt.bucket, err = storage.New(cfg.Storage); err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
	}

	src, err := rt.source(cfg)
	if err != nil {
		return nil, err
	}
	if src, err = rt.cached(ctx, cfg, src); err != nil {
		rt.Close(ctx)
		return nil, err
	}

	rt.catalog, err = i18n.New(
		i18n.WithDefaultLanguage(langs.Default().String()),
		i18n.WithDir(ui.Translations()),
	)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("translations: %w", err)
	}

	home, detail, err := ui.Templates()
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("templates: %w", err)
	}

	loader := portfolio.NewLoader(src, langs, portfolio.WithLoaderLogger(log))
	rt.site = site.New(home, detail, loader, rt.catalog,
		site.WithName(cfg.Site.Name),
		site.WithAssets(ui.Static()),
		site.WithLogger(log),
	)

	log.Debug("site wired",
		slog.String("source", cfg.Lang.Source),
		slog.String("cache", cfg.Lang.Cache),
		slog.Any("languages", langs.Strings()),
	)
	return rt, nil
}

func (rt *runtime) source(cfg *config.Config) (portfolio.Source, error) {
	switch cfg.Lang.Source {
	case config.SourceDir:
		return portfolio.NewFSSource(os.DirFS(cfg.Lang.Dir)), nil
	case config.SourceHTTP:
		return portfolio.NewHTTPSource(cfg.Lang.BaseURL, &http.Client{Timeout: cfg.Lang.HTTPTimeout}), nil
	case config.SourceS3:
		if rt.bucket == nil {
			return nil, errors.New("s3 source requires STORAGE_BUCKET")
		}
		return portfolio.NewBucketSource(rt.bucket), nil
	default:
		return portfolio.NewFSSource(ui.Static()), nil
	}
}

func (rt *runtime) cached(ctx context.Context, cfg *config.Config, src portfolio.Source) (portfolio.Source, error) {
	switch cfg.Lang.Cache {
	case config.CacheMemory:
		mem := cache.NewMemory[[]byte](cache.WithDefaultTTL(cfg.Lang.CacheTTL))
		rt.closers = append(rt.closers, func(context.Context) error { return mem.Close() })
		return portfolio.NewCachedSource(src, mem, cfg.Lang.CacheTTL), nil
	case config.CacheRedis:
		client, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		rt.redis = client
		rt.closers = append(rt.closers, redis.Shutdown(client))
		rc := cache.NewRedis[[]byte](client, cache.Bytes{}, "portfolio:lang:", cfg.Lang.CacheTTL)
		return portfolio.NewCachedSource(src, rc, cfg.Lang.CacheTTL), nil
	default:
		return src, nil
	}
}
