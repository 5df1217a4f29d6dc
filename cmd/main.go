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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/syllabus-builder/docs"
	"github.com/sbilibin2017/syllabus-builder/internal/config"
	"github.com/sbilibin2017/syllabus-builder/internal/docstore"
	"github.com/sbilibin2017/syllabus-builder/internal/handlers"
	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/middlewares"
	"github.com/sbilibin2017/syllabus-builder/internal/repositories"
	"github.com/sbilibin2017/syllabus-builder/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title Syllabus Builder API
// @version 1.0.0
// @description Users, sessions, owned syllabi and a deterministic outline assistant
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
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

// documentStore is what the repositories and /test need from a store.
type documentStore interface {
	repositories.DocumentStore
	services.StoreInspector
}

// app holds the services behind the HTTP API and the resources they own.
type app struct {
	auth        *services.AuthService
	syllabi     *services.SyllabusService
	diagnostics *services.DiagnosticsService
	closers     []func() error
}

// newApp connects the configured backends. Only the document store is
// required; Redis and Kafka are skipped when not configured.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	var store documentStore
	if cfg.UseDatabase() {
		db, err := docstore.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.DatabaseMaxOpenConns, cfg.DatabaseMaxIdleConns)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)

		pg := docstore.NewPostgresStore(db, "postgres")
		if err := pg.EnsureSchema(ctx); err != nil {
			a.close()
			return nil, err
		}
		store = pg
		logger.Log.Info("Using PostgreSQL document store")
	} else {
		store = docstore.NewMemoryStore()
		logger.Log.Warn("DATABASE_URL not set, using in-memory document store")
	}

	var cache services.SessionCache
	if cfg.UseRedis() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, session cache disabled", "addr", cfg.RedisAddr, "error", err)
			rdb.Close()
		} else {
			a.closers = append(a.closers, rdb.Close)
			cache = repositories.NewSessionCacheRepository(rdb, cfg.SessionCacheTTL)
		}
	}

	var events services.KafkaWriter
	if cfg.UseKafka() {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			Async:                  true,
			AllowAutoTopicCreation: true,
		}
		a.closers = append(a.closers, w.Close)
		events = w
	}

	a.auth = services.NewAuthService(
		repositories.NewUserRepository(store),
		repositories.NewSessionRepository(store),
		cache,
		events,
		cfg.SessionTTL,
	)
	a.syllabi = services.NewSyllabusService(repositories.NewSyllabusRepository(store), events)
	a.diagnostics = services.NewDiagnosticsService(store, cfg.DatabaseURL, cfg.DatabaseName)

	return a, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Log.Errorw("failed to close resource", "error", err)
		}
	}
}

// newRouter mounts every route of the API.
func newRouter(cfg *config.Config, a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))

	// Public routes
	r.Get("/", handlers.NewRootHandler())
	r.Get("/schema", handlers.NewSchemaHandler())
	r.Get("/test", handlers.NewDiagnosticsHandler(a.diagnostics))
	r.Post("/auth/register", handlers.NewRegisterHandler(a.auth))
	r.Post("/auth/login", handlers.NewLoginHandler(a.auth))
	r.Post("/auth/logout", handlers.NewLogoutHandler(a.auth))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(a.auth))
		r.Post("/syllabi", handlers.NewCreateSyllabusHandler(a.syllabi))
		r.Get("/syllabi", handlers.NewListSyllabiHandler(a.syllabi))
		r.Get("/syllabi/{id}", handlers.NewGetSyllabusHandler(a.syllabi))
		r.Post("/ai/chat", handlers.NewChatHandler())
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// run initializes the logger and backends, serves HTTP, and shuts down
// gracefully on SIGINT, SIGTERM or SIGQUIT.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
