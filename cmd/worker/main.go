package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/orbisenerji/backend-store/internal/common"
	"github.com/orbisenerji/backend-store/internal/config"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/notify"
	"github.com/orbisenerji/backend-store/internal/obs"
	"github.com/orbisenerji/backend-store/internal/queue"
	"github.com/orbisenerji/backend-store/internal/resilience"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logFormat := envOrDefault("OBS_LOG_FORMAT", "json")
	logLevel := envOrDefault("OBS_LOG_LEVEL", "info")
	logger := obs.NewLogger(logFormat, logLevel).With().Str("env", cfg.AppEnv).Str("component", "worker").Logger()

	obs.MustRegisterDomainMetrics(envOrDefault("OBS_METRICS_NAMESPACE", "orbis"), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse database config")
	}
	poolConfig.ConnConfig.Tracer = obs.PGXTracer{}
	if poolConfig.ConnConfig.RuntimeParams == nil {
		poolConfig.ConnConfig.RuntimeParams = map[string]string{}
	}
	poolConfig.ConnConfig.RuntimeParams["application_name"] = "orbis-store-worker"

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse redis url")
	}
	taskRedis := asynq.RedisClientOpt{
		Addr:     redisOpts.Addr,
		Password: redisOpts.Password,
		DB:       redisOpts.DB,
	}

	var mail common.EmailSender = common.NopEmailSender{}
	if cfg.EmailEnabled {
		if cfg.SMTPAddr == "" {
			logger.Fatal().Msg("EMAIL_ENABLED requires SMTP_ADDR")
		}
		mail = notify.BreakerSender{
			Next: notify.SMTPSender{
				Addr:     cfg.SMTPAddr,
				Username: cfg.SMTPUsername,
				Password: cfg.SMTPPassword,
				From:     cfg.EmailFrom,
			},
			Breaker: resilience.NewBreaker(5, 0.5, 60*time.Second).WithTarget("smtp").WithLogger(logger),
		}
	} else {
		logger.Warn().Msg("email delivery disabled, order confirmations are dropped")
	}

	handlers := &queue.Handlers{
		Q:          dbgen.New(pool),
		Mail:       mail,
		Log:        logger,
		StaleAfter: cfg.CartStaleAfter,
	}

	retryBase := envDurationMillis("WORKER_RETRY_BASE_MS", 2000)
	srv := asynq.NewServer(taskRedis, asynq.Config{
		Concurrency: envInt("WORKER_CONCURRENCY", 10),
		Queues: map[string]int{
			queue.QueueCritical:    6,
			queue.QueueDefault:     3,
			queue.QueueMaintenance: 1,
		},
		RetryDelayFunc: func(n int, err error, task *asynq.Task) time.Duration {
			return resilience.Backoff(retryBase, n, 0.2)
		},
		Logger: asynqLogger{logger},
	})

	scheduler, err := queue.NewScheduler(taskRedis, cfg.CartSweepInterval, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("initialise scheduler")
	}
	if err := scheduler.Start(); err != nil {
		logger.Fatal().Err(err).Msg("start scheduler")
	}
	defer scheduler.Shutdown()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-shutdownCtx.Done()
		logger.Info().Msg("worker stopping")
		srv.Shutdown()
	}()

	logger.Info().Msg("worker starting")
	if err := srv.Run(handlers.Mux()); err != nil {
		logger.Fatal().Err(err).Msg("worker exited unexpectedly")
	}
	logger.Info().Msg("worker stopped")
}

// asynqLogger adapts zerolog to the asynq logging interface.
type asynqLogger struct {
	log zerolog.Logger
}

func (l asynqLogger) Debug(args ...any) { l.log.Debug().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...any)  { l.log.Info().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...any)  { l.log.Warn().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...any) { l.log.Error().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...any) { l.log.Fatal().Msg(fmt.Sprint(args...)) }

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(val)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return parsed
		}
	}
	return fallback
}

func envDurationMillis(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Millisecond
}
