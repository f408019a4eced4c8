package main

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/auth"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/chat"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/cooldown"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/dailycap"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/market"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/reward"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/maintenance"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/realtime"
	redisadapter "github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/redis"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/token"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// stores groups the repositories the use cases run on
type stores struct {
	uow       persistence.UnitOfWork
	users     persistence.UserRepository
	ledger    persistence.LedgerRepository
	cooldowns persistence.CooldownRepository
	awards    persistence.DailyCapRepository
	chat      persistence.ChatRepository
}

// application owns every long-lived component of the server process
type application struct {
	cfg          *config.Config
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	db    *database.Manager
	redis goredis.UniversalClient

	hub    *realtime.Hub
	job    *maintenance.Job
	router *gin.Engine
}

func newApplication(ctx context.Context, cfg *config.Config, logger coreport.Logger, tp coreport.TimeProvider) (*application, error) {
	a := &application{
		cfg:          cfg,
		logger:       logger,
		timeProvider: tp,
	}

	if cfg.Redis.Addr != "" {
		client, err := redisadapter.NewClient(ctx, redisadapter.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		a.redis = client
	}

	s, err := a.buildStores(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	policy, err := entity.NewDayPolicy(cfg.Reward.DayTimezone)
	if err != nil {
		a.close()
		return nil, err
	}

	prices := cfg.Market.Prices
	if len(prices) == 0 {
		prices = entity.DefaultPrices()
	}
	priceTable, err := entity.NewPriceTable(prices)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("market prices: %w", err)
	}

	codec, err := a.buildTokenCodec()
	if err != nil {
		a.close()
		return nil, err
	}

	rewardConfig := reward.DefaultConfig()
	rewardConfig.Cooldown = cfg.Reward.FishingCooldown
	rewardConfig.RewardPerCatch = cfg.Reward.PerCatch

	gate := cooldown.NewGate(s.cooldowns, tp, logger)
	tracker := dailycap.NewTracker(s.uow, tp, policy, cfg.Reward.DailyCap, logger)

	a.hub = realtime.NewHub(logger)

	authService := auth.NewService(s.users, codec, tp, logger)
	rewardService := reward.NewIssuer(gate, tracker, s.uow, tp, logger, rewardConfig)
	marketService := market.NewExchange(s.uow, priceTable, tp, logger)
	accountService := account.NewService(s.ledger, logger)
	chatService := chat.NewService(s.chat, a.hub, tp, logger)

	var pinger handler.Pinger
	if a.db != nil {
		pinger = a.db
	}

	var guestLimit gin.HandlerFunc
	if a.redis != nil && cfg.RateLimit.GuestPerMinute > 0 {
		limiter := redisadapter.NewRateLimiter(a.redis, cfg.RateLimit.GuestPerMinute, cfg.RateLimit.GuestBurst)
		guestLimit = middleware.RateLimit(limiter, "guest", logger)
	}

	a.router = gin.New()
	routes.SetupMiddlewares(a.router, logger, cfg.Server.AllowedOrigins...)
	routes.SetupRoutes(a.router, routes.Handlers{
		Health:  handler.NewHealthHandler(pinger, logger),
		Auth:    handler.NewAuthHandler(authService, logger),
		Reward:  handler.NewRewardHandler(rewardService, logger),
		Market:  handler.NewMarketHandler(marketService, logger),
		Account: handler.NewAccountHandler(accountService, logger),
		Chat:    handler.NewChatHandler(chatService, authService, a.hub, logger),
	}, middleware.Auth(authService, logger), guestLimit)

	if cfg.Maintenance.Enabled {
		var locker maintenance.Locker
		if a.redis != nil {
			locker = redisadapter.NewLocker(a.redis)
		}
		a.job = maintenance.NewJob(
			s.cooldowns,
			s.awards,
			locker,
			database.NewMetricsCollector(logger, tp, cfg.Database.SlowThreshold),
			tp,
			logger,
			maintenance.Config{
				Schedule:                cfg.Maintenance.Schedule,
				CooldownRetention:       cfg.Maintenance.CooldownRetention,
				DailyAwardRetentionDays: cfg.Maintenance.DailyAwardRetentionDays,
				LockTTL:                 cfg.Maintenance.LockTTL,
				DayPolicy:               policy,
			},
		)
	}

	return a, nil
}

// buildStores connects the configured ledger store
func (a *application) buildStores(ctx context.Context) (*stores, error) {
	var s *stores

	switch a.cfg.Storage.Driver {
	case "memory":
		a.logger.Warn("Using in-memory storage, balances are lost on restart", nil)
		store := memory.NewStore()
		s = &stores{
			uow:       memory.NewUnitOfWork(store),
			users:     memory.NewUserRepository(store),
			ledger:    memory.NewLedgerRepository(store),
			cooldowns: memory.NewCooldownRepository(store),
			awards:    memory.NewDailyCapRepository(store),
			chat:      memory.NewChatRepository(store),
		}
	case "postgres":
		a.db = database.NewManager(databaseConfig(a.cfg), a.logger, a.timeProvider)
		db, err := a.db.Connect(ctx)
		if err != nil {
			return nil, err
		}
		if a.cfg.Database.AutoMigrate {
			if err := a.db.Migrate(ctx); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		uow, err := a.db.CreateUnitOfWork()
		if err != nil {
			return nil, err
		}
		s = &stores{
			uow:       uow,
			users:     repository.NewUserRepository(db, a.logger),
			ledger:    repository.NewLedgerRepository(db, a.timeProvider, a.logger),
			cooldowns: repository.NewCooldownRepository(db, a.logger),
			awards:    repository.NewDailyCapRepository(db, a.timeProvider, a.logger),
			chat:      repository.NewChatRepository(db, a.logger),
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}

	if a.cfg.Cooldown.Backend == "redis" {
		if a.redis == nil {
			return nil, fmt.Errorf("cooldown backend redis needs redis.addr")
		}
		s.cooldowns = redisadapter.NewCooldownRepository(a.redis, a.logger)
	}

	return s, nil
}

func (a *application) buildTokenCodec() (coreport.TokenCodec, error) {
	if a.cfg.Auth.TokenCodec == "jwt" {
		return token.NewJWTCodec(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.timeProvider)
	}
	return token.NewRawCodec(), nil
}

func (a *application) startMaintenance() error {
	if a.job == nil {
		return nil
	}
	return a.job.Start()
}

func (a *application) stopMaintenance(ctx context.Context) {
	if a.job != nil {
		a.job.Stop(ctx)
	}
}

// close releases connections. Safe to call on a partially built application.
func (a *application) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("Failed to close redis client", map[string]any{
				"error": err.Error(),
			})
		}
	}
}
