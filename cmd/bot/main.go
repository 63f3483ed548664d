// Package main - точка входа для Telegram бота учёта активностей.
//
// Бот принимает команды вида /pushup 50, агрегирует статистику за день,
// неделю и всё время и выдаёт одноразовые достижения за рубежи.
//
// Архитектура следует принципам Clean Architecture:
// - Domain: каталог активностей, агрегация, достижения
// - Application: команды и запросы (CQRS)
// - Infrastructure: PostgreSQL, Redis, Telegram API
// - Interface: обработчики команд бота
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KapustinMaxim/beerbot/config"
	"github.com/KapustinMaxim/beerbot/internal/application/command"
	"github.com/KapustinMaxim/beerbot/internal/application/query"
	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
	telegramapi "github.com/KapustinMaxim/beerbot/internal/infrastructure/external/telegram"
	"github.com/KapustinMaxim/beerbot/internal/infrastructure/persistence/postgres"
	"github.com/KapustinMaxim/beerbot/internal/infrastructure/persistence/redis"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/handler"
	"github.com/KapustinMaxim/beerbot/internal/interface/telegram/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	log.Info("starting activity bot",
		"env", cfg.App.Environment,
		"debug", cfg.App.Debug,
		"timezone", cfg.App.Timezone,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ПОДКЛЮЧЕНИЕ К БАЗЕ ДАННЫХ
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("connecting to database...")
	pgCfg := postgres.DefaultConfig(cfg.Database.URL)
	pgCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	pgCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	pgCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	pgCfg.MaxConnIdleTime = cfg.Database.ConnMaxIdleTime

	dbConn, err := postgres.NewConnection(ctx, pgCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		log.Info("closing database connection...")
		dbConn.Close()
	}()
	log.Info("database connection established")

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ЗАПУСК МИГРАЦИЙ
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("running database migrations...")
	if err := postgres.RunMigrations(ctx, dbConn); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("migrations completed")

	// ─────────────────────────────────────────────────────────────────────────
	// 5. ИНИЦИАЛИЗАЦИЯ REDIS (опционально)
	// ─────────────────────────────────────────────────────────────────────────
	var leaderboardCache query.LeaderboardCache

	if !cfg.Redis.Disabled {
		log.Info("connecting to Redis...")
		redisCfg := redis.DefaultConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB
		redisCfg.PoolSize = cfg.Redis.PoolSize
		redisCfg.MinIdleConns = cfg.Redis.MinIdleConns
		redisCfg.DialTimeout = cfg.Redis.DialTimeout
		redisCfg.ReadTimeout = cfg.Redis.ReadTimeout
		redisCfg.WriteTimeout = cfg.Redis.WriteTimeout

		cache, err := redis.NewCache(redisCfg)
		if err != nil {
			log.Warn("failed to connect to Redis, caching disabled", "error", err)
		} else {
			defer cache.Close()
			leaderboardCache = cache
			log.Info("Redis connection established")
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. ИНИЦИАЛИЗАЦИЯ ДОМЕННОГО СЛОЯ
	// ─────────────────────────────────────────────────────────────────────────
	catalog := activity.DefaultCatalog()
	eventStore := postgres.NewEventStore(dbConn)
	achievementRepo := postgres.NewAchievementRepo(dbConn)
	aggregator := activity.NewAggregator(catalog, eventStore, cfg.App.Location)
	tracker := activity.NewTracker(catalog, achievementRepo)

	// ─────────────────────────────────────────────────────────────────────────
	// 7. ИНИЦИАЛИЗАЦИЯ APPLICATION LAYER (Commands, Queries)
	// ─────────────────────────────────────────────────────────────────────────
	submitCmd := command.NewSubmitActivityHandler(
		catalog, eventStore, aggregator, tracker, cfg.Engine.MaxCount)
	statsQuery := query.NewGetUserStatsHandler(aggregator)
	leaderboardQuery := query.NewGetLeaderboardHandler(
		aggregator, leaderboardCache, cfg.Engine.LeaderboardCacheTTL,
		cfg.Engine.RankingActivity, log)

	// ─────────────────────────────────────────────────────────────────────────
	// 8. ИНИЦИАЛИЗАЦИЯ TELEGRAM КЛИЕНТА И РОУТЕРА
	// ─────────────────────────────────────────────────────────────────────────
	clientCfg := telegramapi.DefaultClientConfig(cfg.Telegram.Token)
	clientCfg.PollTimeout = int(cfg.Telegram.PollingTimeout.Seconds())
	clientCfg.Logger = log
	client := telegramapi.NewClient(clientCfg)

	me, err := client.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify bot token: %w", err)
	}
	log.Info("authorized on Telegram", "username", me.Username)

	statsPresenter := presenter.NewStatsPresenter(catalog)

	router := telegram.NewRouter(log)
	for _, def := range catalog.All() {
		router.Register(def.Key, handler.NewSubmitHandler(submitCmd, catalog, statsPresenter))
	}
	router.Register("stats", handler.NewStatsHandler(statsQuery, statsPresenter))
	router.Register("total", handler.NewTotalHandler(leaderboardQuery, statsPresenter))
	router.Register("start", handler.NewStartHandler(catalog))
	router.RegisterUnknown(handler.NewUnknownHandler(catalog))

	// ─────────────────────────────────────────────────────────────────────────
	// 9. ЗАПУСК БОТА
	// ─────────────────────────────────────────────────────────────────────────
	botCfg := telegram.DefaultBotConfig()
	botCfg.MaxMessageLength = cfg.Engine.MaxMessageLength
	botCfg.PollLimit = cfg.Telegram.PollLimit
	botCfg.Logger = log

	bot := telegram.NewBot(client, router, botCfg)

	log.Info("activity bot is running")
	if err := bot.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("telegram bot error: %w", err)
	}

	log.Info("shutdown completed successfully")
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// setupLogger настраивает структурированное логирование.
func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Observability.LogLevel),
	}
	if cfg.App.Debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.Observability.LogFormat == "text" || cfg.IsDevelopment() {
		// Текстовый формат для development (лучше читается)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// JSON формат для production (лучше для агрегаторов логов)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)

	return log
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
