package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ivankudzin/roomshare/backend/internal/config"
	s3infra "github.com/ivankudzin/roomshare/backend/internal/infra/s3"
	"github.com/ivankudzin/roomshare/backend/internal/jobs/catalogwarm"
	pgrepo "github.com/ivankudzin/roomshare/backend/internal/repo/postgres"
	redrepo "github.com/ivankudzin/roomshare/backend/internal/repo/redis"
	authsvc "github.com/ivankudzin/roomshare/backend/internal/services/auth"
	listingssvc "github.com/ivankudzin/roomshare/backend/internal/services/listings"
	mediasvc "github.com/ivankudzin/roomshare/backend/internal/services/media"
	profilesvc "github.com/ivankudzin/roomshare/backend/internal/services/profiles"
	ratesvc "github.com/ivankudzin/roomshare/backend/internal/services/rate"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	s3         *minio.Client
	httpRouter http.Handler
	warmJob    *catalogwarm.Job
	jobsCtx    context.Context
	stopJobs   context.CancelFunc
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN, int32(cfg.Postgres.MaxConns)); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	var s3Client *minio.Client
	if c, err := s3infra.NewClient(s3infra.Config{
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		Region:    cfg.S3.Region,
		UseSSL:    cfg.S3.UseSSL,
	}); err != nil {
		log.Warn("s3 init failed, cover images disabled", zap.Error(err))
	} else {
		s3Client = c
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	cacheRepo := redrepo.NewCacheRepo(redisClient)
	rateRepo := redrepo.NewRateRepo(redisClient)
	seekerRepo := pgrepo.NewSeekerRepo(pool)
	accommodationRepo := pgrepo.NewAccommodationRepo(pool)
	roommateRepo := pgrepo.NewRoommateRepo(pool)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAccessTTL)
	rateLimiter := ratesvc.NewLimiter(rateRepo, cfg.Scoring.RatePerMinute, cfg.Scoring.RatePer10Sec)
	listingsService := listingssvc.NewService(listingssvc.Dependencies{
		Seekers:   seekerRepo,
		Catalog:   accommodationRepo,
		Statuses:  accommodationRepo,
		Roommates: roommateRepo,
		Cache:     cacheRepo,
		Images:    mediasvc.NewS3Storage(s3Client, cfg.S3.Bucket),
		Logger:    log,
	}, listingssvc.Config{
		CatalogCacheTTL: cfg.Scoring.CatalogCacheTTL,
		ImageURLTTL:     cfg.Scoring.ImageURLTTL,
		Concurrency:     cfg.Scoring.Concurrency,
	})

	RegisterRoutes(r, Dependencies{
		Tokens:          jwtManager,
		ListingsService: listingsService,
		ProfileService:  profilesvc.NewService(seekerRepo),
		RateLimiter:     rateLimiter,
		Logger:          log,
	})

	warmInterval := cfg.Scoring.CatalogWarmInterval
	if pool == nil || cfg.Scoring.CatalogCacheTTL <= 0 {
		warmInterval = 0
	}
	warmJob := catalogwarm.New(listingsService, warmInterval, log)
	jobsCtx, stopJobs := context.WithCancel(ctx)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		s3:         s3Client,
		httpRouter: r,
		warmJob:    warmJob,
		jobsCtx:    jobsCtx,
		stopJobs:   stopJobs,
	}, nil
}

func (a *App) Run() error {
	go a.warmJob.Loop(a.jobsCtx)

	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	a.stopJobs()
	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
