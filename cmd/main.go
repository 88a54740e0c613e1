package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/idea-board/internal/handlers"
	"github.com/sbilibin2017/idea-board/internal/jwt"
	"github.com/sbilibin2017/idea-board/internal/logger"
	"github.com/sbilibin2017/idea-board/internal/middlewares"
	"github.com/sbilibin2017/idea-board/internal/repositories"
	"github.com/sbilibin2017/idea-board/internal/services"
	"github.com/sbilibin2017/idea-board/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/idea-board/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	DatabaseURL    string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret    string
	JWTExpSecond int

	LoginMaxAttempts         int64
	LoginAttemptWindowSecond int

	CORSAllowedOrigins []string
}

// @title IdeaBoard API
// @version 1.0.0
// @description Idea board backend: user signup and login, and per-user idea storage
// @host localhost:8080
// @BasePath /
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

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, JWT and CORS configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getList := func(key, defaultValue string) []string {
		var out []string
		for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		var pgPort int
		if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
			return
		}
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(getEnv("POSTGRES_USER", "user"), getEnv("POSTGRES_PASSWORD", "password")),
			Host:     fmt.Sprintf("%s:%d", getEnv("POSTGRES_HOST", "localhost"), pgPort),
			Path:     getEnv("POSTGRES_DB", "ideaboard"),
			RawQuery: "sslmode=disable",
		}
		cfg.DatabaseURL = dsn.String()
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "idea.created")

	// JWT config
	cfg.JWTSecret = getEnv("JWT_SECRET", getEnv("JWT_SECRET_KEY", "supersecretjwtkey"))
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "0")); err != nil {
		return
	}

	// Login throttle config
	if cfg.LoginMaxAttempts, err = strconv.ParseInt(getEnv("LOGIN_MAX_ATTEMPTS", "5"), 10, 64); err != nil {
		return
	}
	if cfg.LoginAttemptWindowSecond, err = strconv.Atoi(getEnv("LOGIN_ATTEMPT_WINDOW_SECOND", "900")); err != nil {
		return
	}

	// CORS config
	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080")

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := migrations.Up(ctx, db); err != nil {
		return err
	}
	logger.Log.Info("PostgreSQL connected and migrated")

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecret),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	ideaReadRepo := repositories.NewIdeaReadRepository(db, middlewares.GetTxFromContext)
	ideaWriteRepo := repositories.NewIdeaWriteRepository(db, middlewares.GetTxFromContext)

	// Connect to Redis; without it logins are not throttled
	var authOpts []services.AuthOption
	if cfg.RedisHost != "" && cfg.LoginMaxAttempts > 0 {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, login throttling disabled", "error", err)
		} else {
			window := time.Duration(cfg.LoginAttemptWindowSecond) * time.Second
			authOpts = append(authOpts, services.WithLoginThrottle(
				repositories.NewLoginAttemptRepository(rdb, window),
				cfg.LoginMaxAttempts,
			))
		}
	}

	// Kafka writer for idea events
	var eventWriter services.KafkaWriter
	if kw := newKafkaWriter(cfg); kw != nil {
		defer kw.Close()
		eventWriter = kw
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, authOpts...)
	ideaService := services.NewIdeaService(ideaWriteRepo, ideaReadRepo, eventWriter)

	r := newRouter(cfg, routerDeps{
		db:        db,
		tokens:    tokens,
		resolver:  authService,
		signupper: authService,
		loginer:   authService,
		creator:   ideaService,
		lister:    ideaService,
		getter:    ideaService,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// newKafkaWriter returns nil when no brokers are configured.
// Writes are async so an unreachable broker never delays a request.
func newKafkaWriter(cfg config) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		WriteTimeout:           5 * time.Second,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver idea events", "count", len(messages), "error", err)
			}
		},
	}
}

// routerDeps carries the collaborators the HTTP routes delegate to.
type routerDeps struct {
	db        *sqlx.DB
	tokens    middlewares.TokenExtractor
	resolver  middlewares.UserResolver
	signupper handlers.Signupper
	loginer   handlers.Loginer
	creator   handlers.IdeaCreator
	lister    handlers.IdeaLister
	getter    handlers.IdeaGetter
}

// newRouter builds the route table: public user routes, signup inside a
// transaction, and the idea routes behind bearer authentication.
func newRouter(cfg config, deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/", handlers.NewRootHandler())
	r.Route("/users", func(r chi.Router) {
		r.With(middlewares.TxMiddleware(deps.db)).Post("/signup", handlers.NewSignupHandler(deps.signupper))
		r.Post("/login", handlers.NewLoginHandler(deps.loginer))
	})

	// Protected routes
	r.Route("/ideas", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(deps.tokens, deps.resolver))
		r.Post("/", handlers.NewCreateIdeaHandler(deps.creator))
		r.Get("/", handlers.NewListIdeasHandler(deps.lister))
		r.Get("/{id}", handlers.NewGetIdeaHandler(deps.getter))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
