package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	validator "github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/extra/redisotel/v9"
	redis "github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	limiterstdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/orbisenerji/backend-store/internal/audit"
	"github.com/orbisenerji/backend-store/internal/auth"
	"github.com/orbisenerji/backend-store/internal/cart"
	"github.com/orbisenerji/backend-store/internal/catalog"
	"github.com/orbisenerji/backend-store/internal/checkout"
	"github.com/orbisenerji/backend-store/internal/common"
	"github.com/orbisenerji/backend-store/internal/config"
	"github.com/orbisenerji/backend-store/internal/content"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/dealer"
	"github.com/orbisenerji/backend-store/internal/health"
	"github.com/orbisenerji/backend-store/internal/lock"
	"github.com/orbisenerji/backend-store/internal/obs"
	"github.com/orbisenerji/backend-store/internal/order"
	"github.com/orbisenerji/backend-store/internal/pricing"
	"github.com/orbisenerji/backend-store/internal/queue"
	"github.com/orbisenerji/backend-store/internal/ratelimit"
	"github.com/orbisenerji/backend-store/internal/reviews"
	"github.com/orbisenerji/backend-store/internal/security"
	"github.com/orbisenerji/backend-store/internal/user"
)

const (
	accessCookieName  = "orbis_at"
	refreshCookieName = "orbis_rt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logFormat := envOrDefault("OBS_LOG_FORMAT", "json")
	logLevel := envOrDefault("OBS_LOG_LEVEL", "info")
	logger := obs.NewLogger(logFormat, logLevel).With().Str("env", cfg.AppEnv).Logger()

	metricsNamespace := envOrDefault("OBS_METRICS_NAMESPACE", "orbis")
	metricsEnabled := envBool("OBS_ENABLE_PROMETHEUS", true)
	obs.MustRegisterDomainMetrics(metricsNamespace, nil)

	tracingEnabled := envBool("OBS_ENABLE_TRACING", true)
	if tracingEnabled {
		sampling := envFloat("OBS_TRACING_SAMPLING_RATIO", 1.0)
		shutdown, err := obs.InitTracer(context.Background(), obs.TracingConfig{
			ServiceName:   "orbis-store-api",
			Endpoint:      envOrDefault("OBS_OTLP_ENDPOINT", ""),
			Exporter:      envOrDefault("OBS_TRACING_EXPORTER", "otlp"),
			SamplingRatio: sampling,
			Environment:   cfg.AppEnv,
		})
		if err != nil {
			logger.Error().Err(err).Msg("initialise tracing")
			tracingEnabled = false
		} else {
			defer func() {
				ctx := context.Background()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("shutdown tracer")
				}
			}()
		}
	}

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
	poolConfig.ConnConfig.RuntimeParams["application_name"] = "orbis-store-api"

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}

	queries := dbgen.New(pool)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse redis url")
	}
	redisClient := redis.NewClient(redisOpts)
	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		logger.Error().Err(err).Msg("instrument redis tracing")
	}
	if metricsEnabled {
		if err := redisotel.InstrumentMetrics(redisClient); err != nil {
			logger.Error().Err(err).Msg("instrument redis metrics")
		}
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("close redis")
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("ping redis")
	}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisOpts.Addr,
		Password: redisOpts.Password,
		DB:       redisOpts.DB,
	})
	defer func() {
		if err := taskClient.Close(); err != nil {
			logger.Error().Err(err).Msg("close task client")
		}
	}()

	validate := validator.New()

	prices := &pricing.Resolver{Q: queries, Log: logger}
	catalogCache := catalog.NewCache(redisClient, cfg.CatalogCacheTTL)

	catalogService, err := catalog.NewService(catalog.ServiceConfig{
		Queries: queries,
		Cache:   catalogCache,
		Prices:  prices,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("initialise catalog service")
	}
	catalogHandler := catalog.NewHandler(catalog.HandlerConfig{Service: catalogService, Prices: prices})
	catalogAdmin := &catalog.AdminHandler{Q: queries, Cache: catalogCache, Validate: validate}

	authService, err := auth.NewService(auth.Config{
		Queries:         queries,
		Secret:          cfg.JWTSecret,
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("initialise auth service")
	}
	authHandler := &auth.Handler{
		Service:           authService,
		AccessCookieName:  accessCookieName,
		RefreshCookieName: refreshCookieName,
		CookieDomain:      cfg.CookieDomain,
		CookieSecure:      cfg.CookieSecure,
		CookieSameSite:    cfg.CookieSameSite,
	}
	authMiddleware := auth.Middleware{Service: authService, AccessCookie: accessCookieName}

	userHandler := &user.Handler{Svc: &user.Service{Q: queries}}

	cartSvc := &cart.Service{Q: queries, Prices: prices}
	cartHandler := &cart.Handler{Svc: cartSvc}

	checkoutSvc := &checkout.Service{
		Q:       queries,
		Prices:  prices,
		Commits: &checkout.TxCommitter{Q: queries, Pool: pool},
		Notify:  queue.Enqueuer{Client: taskClient, Log: logger},
		Locker:  lock.Locker{R: redisClient},
		LockTTL: cfg.CheckoutLockTTL,
		Log:     logger,
	}
	checkoutHandler := &checkout.Handler{Svc: checkoutSvc}

	orderHandler := &order.Handler{Q: queries}
	orderAdmin := &order.AdminHandler{Q: queries}

	reviewsSvc := &reviews.Service{Q: queries}
	reviewsHandler := &reviews.Handler{Svc: reviewsSvc, Products: queries}
	reviewsAdmin := &reviews.AdminHandler{Svc: reviewsSvc}

	dealerSvc := &dealer.Service{
		Q:       queries,
		Granter: &dealer.TxGranter{Q: queries, Pool: pool},
		Log:     logger,
	}
	dealerHandler := &dealer.Handler{Svc: dealerSvc, Validate: validate}
	dealerAdmin := &dealer.AdminHandler{Svc: dealerSvc}

	contentSvc := &content.Service{Q: queries, Cache: catalogCache}
	contentHandler := &content.Handler{Svc: contentSvc}
	contentAdmin := &content.AdminHandler{Svc: contentSvc, Validate: validate}

	pricingAdmin := &pricing.AdminHandler{Q: queries, Validate: validate}

	auditSvc := &audit.Service{
		Store:        queries,
		Enabled:      cfg.AuditEnabled,
		SamplingRate: cfg.AuditSamplingRate,
	}
	auditRecorder := audit.HTTPRecorder{
		Service: auditSvc,
		OnError: func(err error) { logger.Error().Err(err).Msg("record audit entry") },
	}
	auditHandler := audit.Handler{Store: queries}

	idem := common.Idem{R: redisClient, TTL: cfg.IdempotencyTTL}

	loginLimiter := ratelimit.Handler{
		Limiter: ratelimit.Limiter{Client: redisClient, Prefix: "ratelimit:auth:"},
		Config: ratelimit.Config{
			Key:    func(r *http.Request) string { return common.ClientIP(r) },
			Window: cfg.LoginRateLimitWindow,
			Max:    cfg.LoginRateLimitMax,
		},
		OnError: func(err error) { logger.Error().Err(err).Msg("auth rate limiter") },
	}

	var httpMetrics *obs.HTTPMetrics
	if metricsEnabled {
		buckets := obs.ParseBucketsCSV(envOrDefault("OBS_METRICS_BUCKETS_MS", ""))
		httpMetrics = obs.NewHTTPMetrics(metricsNamespace, buckets, nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	if tracingEnabled {
		r.Use(obs.TracingMiddleware)
	}
	if metricsEnabled && httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(security.Headers{Enable: true, EnableHSTS: cfg.CookieSecure}.Middleware)
	r.Use(security.BodyLimit{Max: int64(envInt("SECURE_MAX_BODY_BYTES", 1<<20))}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept", "X-CSRF-Token", "X-Request-ID", "X-Idempotency-Key"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if envBool("SECURE_CSRF_ENABLED", false) {
		r.Use(security.CSRF{}.Middleware)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.GlobalRateLimit)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse global rate limit")
	}
	limiterStore, err := limiterredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{Prefix: "limiter:global"})
	if err != nil {
		logger.Fatal().Err(err).Msg("initialise limiter store")
	}
	r.Use(limiterstdlib.NewMiddleware(limiter.New(limiterStore, rate)).Handler)

	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	if envBool("OBS_ENABLE_PPROF", true) {
		pprofUser := envOrDefault("SECURE_PPROF_BASIC_AUTH_USER", "")
		pprofPass := envOrDefault("SECURE_PPROF_BASIC_AUTH_PASS", "")
		r.Mount("/debug/pprof", protectPprof(newPprofMux(), pprofUser, pprofPass))
	}

	healthHandler := health.Handler{
		Checker:      readinessChecker{db: pool, redis: redisClient},
		DBTimeout:    envDurationMillis("HEALTH_READY_DB_TIMEOUT_MS", 500),
		RedisTimeout: envDurationMillis("HEALTH_READY_REDIS_TIMEOUT_MS", 300),
	}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Use(authMiddleware.Authenticate)

		v.Get("/content/home", contentHandler.Home)
		v.Get("/pages/{slug}", contentHandler.Legal)
		v.Get("/categories", catalogHandler.Categories)
		v.Get("/products", catalogHandler.Products)
		v.Get("/products/{slug}", catalogHandler.ProductDetail)
		v.Get("/products/{slug}/reviews", reviewsHandler.List)
		v.With(authMiddleware.RequireAuth).Post("/products/{slug}/reviews", reviewsHandler.Create)

		v.Route("/auth", func(a chi.Router) {
			a.With(loginLimiter.Middleware).Post("/register", authHandler.Register)
			a.With(loginLimiter.Middleware).Post("/login", authHandler.Login)
			a.Post("/refresh", authHandler.Refresh)
			a.Post("/logout", authHandler.Logout)
			a.With(authMiddleware.RequireAuth).Get("/me", authHandler.Me)
		})

		v.Route("/me", func(m chi.Router) {
			m.Use(authMiddleware.RequireAuth)
			m.Get("/", userHandler.Me)
			m.Patch("/", userHandler.UpdateMe)
			m.Route("/addresses", func(a chi.Router) {
				a.Get("/", userHandler.ListAddresses)
				a.Post("/", userHandler.CreateAddress)
				a.Patch("/{id}", userHandler.UpdateAddress)
				a.Delete("/{id}", userHandler.DeleteAddress)
			})
		})

		v.Route("/cart", func(c chi.Router) {
			c.Use(authMiddleware.RequireAuth)
			c.Get("/", cartHandler.Get)
			c.Group(func(g chi.Router) {
				g.Use(idem.Middleware)
				g.Post("/items", cartHandler.AddItem)
				g.Patch("/items/{itemId}", cartHandler.UpdateItem)
				g.Delete("/items/{itemId}", cartHandler.RemoveItem)
			})
		})

		v.With(authMiddleware.RequireAuth, idem.Middleware).Post("/checkout", checkoutHandler.Submit)

		v.Route("/orders", func(o chi.Router) {
			o.Use(authMiddleware.RequireAuth)
			o.Get("/", orderHandler.List)
			o.Get("/{orderNo}", orderHandler.Get)
			o.Post("/{orderNo}/cancel", orderHandler.Cancel)
		})

		v.Route("/dealer", func(d chi.Router) {
			d.Use(authMiddleware.RequireAuth)
			d.Post("/applications", dealerHandler.Apply)
			d.Get("/applications/me", dealerHandler.Status)
		})

		v.Route("/admin", func(admin chi.Router) {
			admin.Use(authMiddleware.RequireRole("admin"))
			admin.Use(auditRecorder.Middleware(audit.HTTPConfig{}))

			admin.Post("/products", catalogAdmin.CreateProduct)
			admin.Patch("/products/{id}", catalogAdmin.UpdateProduct)
			admin.Post("/products/{id}/variants", catalogAdmin.CreateVariant)
			admin.Post("/products/{id}/images", catalogAdmin.AddImage)
			admin.Patch("/variants/{id}", catalogAdmin.UpdateVariant)
			admin.Post("/categories", catalogAdmin.CreateCategory)

			admin.Get("/price-lists", pricingAdmin.List)
			admin.Post("/price-lists", pricingAdmin.Create)
			admin.Get("/price-lists/{id}/entries", pricingAdmin.Entries)
			admin.Put("/price-lists/{id}/entries", pricingAdmin.UpsertEntry)
			admin.Delete("/price-lists/{id}/entries/{variantId}", pricingAdmin.DeactivateEntry)

			admin.Get("/orders", orderAdmin.List)
			admin.Get("/orders/{id}", orderAdmin.Get)
			admin.Patch("/orders/{id}/status", orderAdmin.PatchStatus)

			admin.Get("/reviews/pending", reviewsAdmin.ListPending)
			admin.Post("/reviews/{id}/approve", reviewsAdmin.Approve)
			admin.Delete("/reviews/{id}", reviewsAdmin.Delete)

			admin.Get("/dealer-applications", dealerAdmin.List)
			admin.Post("/dealer-applications/{id}/approve", dealerAdmin.Approve)
			admin.Post("/dealer-applications/{id}/reject", dealerAdmin.Reject)

			admin.Put("/pages/{slug}", contentAdmin.UpsertLegal)

			admin.Route("/content", func(c chi.Router) {
				c.Get("/hero-slides", contentAdmin.ListHeroSlides)
				c.Post("/hero-slides", contentAdmin.CreateHeroSlide)
				c.Put("/hero-slides/{id}", contentAdmin.UpdateHeroSlide)
				c.Delete("/hero-slides/{id}", contentAdmin.DeleteHeroSlide)
				c.Get("/collections", contentAdmin.ListCollections)
				c.Post("/collections", contentAdmin.CreateCollection)
				c.Put("/collections/{id}", contentAdmin.UpdateCollection)
				c.Delete("/collections/{id}", contentAdmin.DeleteCollection)
				c.Put("/collections/{id}/products", contentAdmin.SetCollectionProducts)
			})

			admin.Get("/audit-logs", auditHandler.List)
		})
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-shutdownCtx.Done()
		health.SetReady(false)
		drain := time.Duration(envInt("SHUTDOWN_DRAIN_SECONDS", 10)) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), drain)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown")
		}
	}()

	health.SetReady(true)
	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
	logger.Info().Msg("server stopped")
}

type readinessChecker struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func (c readinessChecker) PingDB(ctx context.Context, timeout time.Duration) error {
	if c.db == nil {
		return errors.New("db not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.db.Ping(ctx)
}

func (c readinessChecker) PingRedis(ctx context.Context, timeout time.Duration) error {
	if c.redis == nil {
		return errors.New("redis not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.redis.Ping(ctx).Err()
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(val)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "1", "t", "true", "yes", "on":
			return true
		case "0", "f", "false", "no", "off":
			return false
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return parsed
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

func newPprofMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	mux.Handle("/allocs", pprof.Handler("allocs"))
	mux.Handle("/block", pprof.Handler("block"))
	mux.Handle("/goroutine", pprof.Handler("goroutine"))
	mux.Handle("/heap", pprof.Handler("heap"))
	mux.Handle("/mutex", pprof.Handler("mutex"))
	mux.Handle("/threadcreate", pprof.Handler("threadcreate"))
	return mux
}

func protectPprof(handler http.Handler, user, pass string) http.Handler {
	user = strings.TrimSpace(user)
	pass = strings.TrimSpace(pass)
	if user == "" {
		return handler
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 || subtle.ConstantTimeCompare([]byte(p), []byte(pass)) != 1 {
			w.Header().Set("WWW-Authenticate", "Basic realm=restricted")
			http.Error(w, "unauthorised", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
