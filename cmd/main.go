package main

import (
	"context"
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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/rewardlabs/points-txcore/internal/facades"
	"github.com/rewardlabs/points-txcore/internal/handlers"
	"github.com/rewardlabs/points-txcore/internal/jwt"
	"github.com/rewardlabs/points-txcore/internal/logger"
	"github.com/rewardlabs/points-txcore/internal/middlewares"
	"github.com/rewardlabs/points-txcore/internal/repositories"
	"github.com/rewardlabs/points-txcore/internal/services"
	"github.com/rewardlabs/points-txcore/internal/streams"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string
	redisTTL      int

	ratesURL     string
	ratesRefresh int
	submitURL    string

	signingSecret string

	statusSource string // kafka or websocket
	kafkaBrokers []string
	kafkaTopic   string
	kafkaGroupID string
	statusWSURL  string

	jwtSecretKey string
	jwtExpSecond int
}

// @title points-txcore API
// @version 1.0.0
// @description Transaction orchestration core for balance conversions and withdrawals
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config (balance snapshots, read-only)
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

	// Redis config (destination cache store)
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.redisTTL, err = getInt("REDIS_TTL_SECOND", "0"); err != nil {
		return
	}

	// Collaborator endpoints
	cfg.ratesURL = getEnv("RATES_URL", "http://localhost:9080/rates")
	if cfg.ratesRefresh, err = getInt("RATES_REFRESH_SECOND", "30"); err != nil {
		return
	}
	cfg.submitURL = getEnv("SUBMIT_URL", "http://localhost:9080/submit")
	cfg.signingSecret = getEnv("SIGNING_SECRET", "my_super_secret_key")

	// Status channel config
	cfg.statusSource = getEnv("STATUS_SOURCE", "kafka")
	cfg.kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	cfg.kafkaTopic = getEnv("KAFKA_STATUS_TOPIC", "transaction-status")
	cfg.kafkaGroupID = getEnv("KAFKA_GROUP_ID", "points-txcore")
	cfg.statusWSURL = getEnv("STATUS_WS_URL", "ws://localhost:9080/status")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, status stream, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL (balance snapshots)
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis (destination cache store)
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Rate provider
	rateTable := facades.NewRateTable()
	ratesFacade := facades.NewRatesHTTPFacade(cfg.ratesURL, rateTable)
	if err := ratesFacade.Fetch(ctx); err != nil {
		logger.Log.Warnw("initial rate fetch failed, starting with empty table", "error", err)
	}
	go ratesFacade.Poll(ctxShutdown, time.Duration(cfg.ratesRefresh)*time.Second)

	// Core wiring
	dispatcher := services.NewStatusDispatcher()
	sessions := services.NewSessionManager(
		rateTable,
		repositories.NewBalanceReadRepository(db),
		facades.NewSubmissionHTTPFacade(cfg.submitURL),
		facades.NewHMACSigner(cfg.signingSecret),
		dispatcher,
		repositories.NewRedisKVStore(rdb, time.Duration(cfg.redisTTL)*time.Second),
	)
	defer sessions.Close()

	// Status channel
	streamErr := make(chan error, 1)
	switch cfg.statusSource {
	case "websocket":
		stream := streams.NewWSStatusStream(cfg.statusWSURL, dispatcher.Dispatch)
		go func() { streamErr <- stream.Run(ctxShutdown) }()
	default:
		stream := streams.NewKafkaStatusStream(cfg.kafkaBrokers, cfg.kafkaTopic, cfg.kafkaGroupID, dispatcher.Dispatch)
		go func() { streamErr <- stream.Run(ctxShutdown) }()
	}

	// Initialize JWT service
	tokener := jwt.New(cfg.jwtSecretKey, time.Duration(cfg.jwtExpSecond)*time.Second)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Get("/rates", handlers.NewRatesHandler(rateTable))
		r.Post("/quote", handlers.NewQuoteHandler(tokener, sessions))
		r.Post("/transactions", handlers.NewSubmitHandler(tokener, sessions))
		r.Get("/transactions/current", handlers.NewCurrentTransactionHandler(tokener, sessions))
		r.Delete("/transactions/current", handlers.NewDismissTransactionHandler(tokener, sessions))
		r.Get("/destinations", handlers.NewDestinationsHandler(tokener, sessions))
		r.Delete("/destinations/{id}", handlers.NewRemoveDestinationHandler(tokener, sessions))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	case err := <-streamErr:
		if err != nil {
			return fmt.Errorf("status stream failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
