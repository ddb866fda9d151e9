package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/facades"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/handlers"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/middlewares"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/repositories"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Store backends
const (
	storeRedis  = "redis"
	storeMemory = "memory"
)

// config holds every setting read by parseConfig.
type config struct {
	appHost     string
	appPort     string
	logLevel    string
	logEncoding string

	backendBaseURL string
	backendAPIKey  string
	backendTimeout time.Duration

	tickInterval      time.Duration
	redirectDelay     time.Duration
	genericCandidates string

	storeBackend      string
	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisExp          time.Duration

	journalEnabled bool
	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	kafkaBrokers []string
	kafkaTopic   string
}

// @title gw-deposit-checkout API
// @version 1.0.0
// @description Deposit checkout flow: payment option resolution, deposit creation, expiry countdown and cancellation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, backend, store, journal and Kafka configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	var n int

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.logEncoding = getEnv("APP_LOG_ENCODING", logger.EncodingJSON)

	// Backend config
	cfg.backendBaseURL = getEnv("BACKEND_BASE_URL", "http://localhost:8000")
	cfg.backendAPIKey = getEnv("BACKEND_API_KEY", "")
	if n, err = getInt("BACKEND_TIMEOUT_SECOND", "0"); err != nil {
		return
	}
	cfg.backendTimeout = time.Duration(n) * time.Second

	// Checkout config
	if n, err = getInt("CHECKOUT_TICK_MS", "100"); err != nil {
		return
	}
	cfg.tickInterval = time.Duration(n) * time.Millisecond
	if n, err = getInt("CHECKOUT_REDIRECT_SECOND", "10"); err != nil {
		return
	}
	cfg.redirectDelay = time.Duration(n) * time.Second
	cfg.genericCandidates = getEnv("CHECKOUT_GENERIC_CANDIDATES", services.GenericCandidatesPaymentMethods)
	if cfg.genericCandidates != services.GenericCandidatesPaymentMethods &&
		cfg.genericCandidates != services.GenericCandidatesAccountTypes {
		err = fmt.Errorf("CHECKOUT_GENERIC_CANDIDATES: unknown value %q", cfg.genericCandidates)
		return
	}

	// Store config
	cfg.storeBackend = getEnv("STORE_BACKEND", storeRedis)
	if cfg.storeBackend != storeRedis && cfg.storeBackend != storeMemory {
		err = fmt.Errorf("STORE_BACKEND: unknown value %q", cfg.storeBackend)
		return
	}
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if n, err = getInt("REDIS_EXP_SECOND", "0"); err != nil {
		return
	}
	cfg.redisExp = time.Duration(n) * time.Second

	// PostgreSQL config
	if cfg.journalEnabled, err = strconv.ParseBool(getEnv("OUTCOME_JOURNAL_ENABLED", "false")); err != nil {
		err = fmt.Errorf("OUTCOME_JOURNAL_ENABLED: %w", err)
		return
	}
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "checkout-outcomes")

	return
}

// run initializes the logger, stores, outcome sinks and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel, cfg.logEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Key-value store for start times and redirect URLs
	var kv services.KeyValueStore
	switch cfg.storeBackend {
	case storeMemory:
		logger.Log.Info("Using in-memory checkout store")
		kv = repositories.NewMemoryKeyValueRepository()
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return fmt.Errorf("redis ping: %w", err)
		}
		defer rdb.Close()
		kv = repositories.NewRedisKeyValueRepository(rdb, "checkout:", cfg.redisExp)
	}

	// Outcome journal
	var journal services.OutcomeJournal
	if cfg.journalEnabled {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			logger.Log.Errorw("PostgreSQL connection error", "error", err)
			return fmt.Errorf("postgres connect: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.pgMaxOpenConns)
		db.SetMaxIdleConns(cfg.pgMaxIdleConns)

		repo := repositories.NewOutcomeJournalRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("outcome schema: %w", err)
		}
		journal = repo
	}

	// Outcome events
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBrokers...),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing checkout outcomes to %s", cfg.kafkaTopic)
	}

	// Backend gateway
	backend := facades.NewBackendHTTPFacade(
		cfg.backendBaseURL,
		cfg.backendAPIKey,
		&http.Client{Timeout: cfg.backendTimeout},
	)

	// Initialize services
	resolver := services.NewOptionResolver(services.NewCandidateProvider(backend, cfg.genericCandidates))
	redirects := services.NewRedirectStore(kv)
	initiator := services.NewDepositInitiator(backend, redirects)
	checkoutService := services.NewCheckoutService(
		backend,
		resolver,
		initiator,
		backend,
		services.NewCountdownStore(kv),
		redirects,
		services.NewOutcomeRecorder(kafkaWriter, journal),
		services.CheckoutConfig{
			TickInterval:  cfg.tickInterval,
			RedirectDelay: cfg.redirectDelay,
		},
	)
	defer checkoutService.Close()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.NewHealthHandler())

		r.Route("/checkout/{id}", func(r chi.Router) {
			r.Post("/", handlers.NewStartCheckoutHandler(checkoutService))
			r.Get("/", handlers.NewGetCheckoutHandler(checkoutService))
			r.Delete("/", handlers.NewLeaveCheckoutHandler(checkoutService))

			r.Get("/options", handlers.NewListOptionsHandler(checkoutService))
			r.Post("/select", handlers.NewSelectOptionHandler(checkoutService))
			r.Post("/confirm", handlers.NewConfirmSelectionHandler(checkoutService))

			r.Post("/complete", handlers.NewCompletePaymentHandler(checkoutService))
			r.Get("/thankyou", handlers.NewThankYouHandler(checkoutService))
			r.Post("/thankyou/redirect", handlers.NewRedirectNowHandler(checkoutService))

			r.Post("/cancel", handlers.NewRequestCancelHandler(checkoutService))
			r.Post("/cancel/confirm", handlers.NewConfirmCancelHandler(checkoutService))
			r.Post("/cancel/dismiss", handlers.NewDismissCancelHandler(checkoutService))

			r.Get("/outcomes", handlers.NewListOutcomesHandler(checkoutService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
