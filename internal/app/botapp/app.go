package botapp

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Infinity-Development/sky-net-bot/internal/config"
	"github.com/Infinity-Development/sky-net-bot/internal/infra/discord"
	"github.com/Infinity-Development/sky-net-bot/internal/jobs/cleanup"
	pgrepo "github.com/Infinity-Development/sky-net-bot/internal/repo/postgres"
	redisrepo "github.com/Infinity-Development/sky-net-bot/internal/repo/redis"
	"github.com/Infinity-Development/sky-net-bot/internal/services/enforcement"
	"github.com/Infinity-Development/sky-net-bot/internal/services/limits"
)

// App owns the gateway connection and the enforcement pipeline behind it.
type App struct {
	cfg         config.Config
	logger      *zap.Logger
	postgres    *pgxpool.Pool
	redis       *goredis.Client
	discord     *discord.Client
	enforcement *enforcement.Service
	cleanupJob  *cleanup.Job
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	pool, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("init postgres for bot app: %w", err)
	}

	redisClient := redisrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	discordClient, err := discord.New(cfg.Discord.Token)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init discord client: %w", err)
	}

	guildRepo := pgrepo.NewGuildRepo(pool)
	actionRepo := pgrepo.NewActionRepo(pool)
	limitRepo := pgrepo.NewLimitRepo(pool)
	hitLimitRepo := pgrepo.NewHitLimitRepo(pool)
	cooldownRepo := redisrepo.NewCooldownRepo(redisClient)

	evaluator := limits.NewEvaluator(limitRepo, actionRepo)

	svc := enforcement.NewService(enforcement.Dependencies{
		Guilds:    guildRepo,
		Actions:   actionRepo,
		Evaluator: evaluator,
		Audit:     hitLimitRepo,
		Cooldowns: cooldownRepo,
		Platform:  discordClient,
		Logger:    logger,
	}, enforcement.Config{
		CooldownTTL: cfg.Enforcement.CooldownTTL,
	})

	cleanupJob := cleanup.NewActionCleanupJob(actionRepo, cfg.Enforcement.ActionRetention, logger)

	app := &App{
		cfg:         cfg,
		logger:      logger,
		postgres:    pool,
		redis:       redisClient,
		discord:     discordClient,
		enforcement: svc,
		cleanupJob:  cleanupJob,
	}
	app.registerHandlers()

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.discord.Open(); err != nil {
		return err
	}

	a.logger.Info("bot app started")

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.runCleanupLoop(ctx)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("bot app stopped")
		return nil
	case err := <-errCh:
		return err
	}
}

func (a *App) runCleanupLoop(ctx context.Context) error {
	interval := a.cfg.Enforcement.CleanupInterval
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	if err := a.cleanupJob.Run(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := a.cleanupJob.Run(ctx); err != nil {
				return err
			}
		}
	}
}

func (a *App) Close() {
	if a.discord != nil {
		if err := a.discord.Close(); err != nil {
			a.logger.Warn("close discord session", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("close redis client", zap.Error(err))
		}
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
}
