package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-reading-plan/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/catalog"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/config"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/services"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/workers"
)

type app struct {
	router *gin.Engine
	repos  *repository.Repositories
	redis  *redis.Client
	retry  *workers.SaveRetryWorker
	plans  *services.PlanService
	log    *zap.SugaredLogger
}

func newApp(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger, clock adapterHTTP.Clock) (*app, error) {
	startTime := time.Now()

	plans, err := newPlanService(cfg.Plan)
	if err != nil {
		return nil, err
	}

	if v := plans.Verify(); !v.Consistent {
		log.Warnw("plan quota does not match catalog, some units will not be scheduled",
			"year", v.Year,
			"catalog_units", v.CatalogUnits,
			"quota_total", v.QuotaTotal,
			"unassigned", v.Unassigned,
		)
	}

	repos, err := repository.NewRepositories(ctx, repository.Options{
		Backend:        cfg.Storage.Backend,
		PostgresDriver: cfg.Storage.DBDriver,
		PostgresDSN:    cfg.PostgresDSN(),
		SQLitePath:     cfg.Storage.SQLitePath,
	}, log)
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = cache.NewRedisClient(ctx, cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warnw("redis unavailable, continuing without cache", "error", err)
			rdb = nil
		}
	}
	repos.WithCache(rdb, log)

	if cfg.UsingDevSecret() {
		log.Warn("JWT_SECRET not set, using the development secret")
	}

	locks := workers.NewUserLocks()
	retry := workers.NewSaveRetryWorker(repos.Progress, locks, cfg.Retry.Interval, cfg.Retry.MaxPending, log)

	tokens := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL, repos.Users)
	auth := services.NewAuthService(repos.Users)
	progress := services.NewProgressService(repos.Progress, plans, locks, retry, log)

	if clock == nil {
		clock = adapterHTTP.SystemClock(cfg.Location())
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(auth, tokens, log),
		PlanHandler:     adapterHTTP.NewPlanHandler(plans, clock, log),
		ProgressHandler: adapterHTTP.NewProgressHandler(progress, clock, log),
		Tokens:          tokens,
		Storage:         repos,
		Redis:           rdb,
		RateLimit: adapterHTTP.RateLimit{
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window,
		},
		AllowedOrigins: cfg.CORSOrigins,
		StartTime:      startTime,
		Logger:         log,
	})

	return &app{
		router: router,
		repos:  repos,
		redis:  rdb,
		retry:  retry,
		plans:  plans,
		log:    log,
	}, nil
}

func newPlanService(cfg config.PlanConfig) (*services.PlanService, error) {
	units, err := catalog.ByName(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	if err := units.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", cfg.Catalog, err)
	}

	tiers, err := domain.ParseQuotaTiers(cfg.QuotaTiers)
	if err != nil {
		return nil, err
	}

	return services.NewPlanService(services.PlanConfig{
		Year:             cfg.Year,
		Catalog:          units,
		ReservedLeadDays: cfg.ReservedLeadDays,
		QuotaTiers:       tiers,
	}), nil
}

// Close flushes anything the retry worker still holds, then releases
// connections.
func (a *app) Close(ctx context.Context) {
	if n := a.retry.Flush(ctx); n > 0 {
		a.log.Infow("flushed pending progress on shutdown", "users", n)
	}
	if left := a.retry.Len(); left > 0 {
		a.log.Errorw("progress lost on shutdown", "users", left)
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warnw("redis close failed", "error", err)
		}
	}
	if err := a.repos.Close(); err != nil {
		a.log.Warnw("storage close failed", "error", err)
	}
}
