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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/rollodex/brandcentral/internal/handlers"
	"github.com/rollodex/brandcentral/internal/jwt"
	"github.com/rollodex/brandcentral/internal/logger"
	"github.com/rollodex/brandcentral/internal/middlewares"
	"github.com/rollodex/brandcentral/internal/observability"
	"github.com/rollodex/brandcentral/internal/repositories"
	"github.com/rollodex/brandcentral/internal/services"
	"github.com/rollodex/brandcentral/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rollodex/brandcentral/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// defaultJWTSecret is only acceptable outside production.
const defaultJWTSecret = "dev_secret_key"

// @title Brand Central API
// @version 1.0.0
// @description B2B portal backend connecting brands and retailers: directory, partnerships, assets and analytics
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		jwtSecret, jwtExpSecond,
		uploadDir, rateLimit, rateLimitWindowSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		jwtSecret, jwtExpSecond,
		uploadDir, rateLimit, rateLimitWindowSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, JWT, upload and rate-limit configuration.
func parseConfig(path string) (
	appHost, appPort, appEnv, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	jwtSecretKey string, jwtExpSecond int,
	uploadDir string, rateLimit, rateLimitWindowSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	appEnv = getEnv("APP_ENV", "development")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "brandcentral")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", defaultJWTSecret)
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}
	if appEnv == "production" && jwtSecretKey == defaultJWTSecret {
		err = errors.New("JWT_SECRET_KEY must be set in production")
		return
	}

	// Upload config
	uploadDir = getEnv("UPLOAD_DIR", "uploads")

	// Rate limit config
	if rateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "100")); err != nil {
		return
	}
	if rateLimitWindowSecond, err = strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECOND", "60")); err != nil {
		return
	}

	return
}

// redisPinger adapts the Redis client to the health probe.
type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

// run initializes the logger, database, Redis and the HTTP server. It
// wires repositories, services and handlers, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, appEnv, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	jwtSecretKey string, jwtExpSecond int,
	uploadDir string, rateLimit, rateLimitWindowSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, appEnv); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Initialize the upload store
	store, err := storage.NewDiskStore(uploadDir)
	if err != nil {
		return err
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	brandReadRepo := repositories.NewBrandReadRepository(db)
	brandWriteRepo := repositories.NewBrandWriteRepository(db)
	retailerWriteRepo := repositories.NewRetailerWriteRepository(db)
	relationshipReadRepo := repositories.NewRelationshipReadRepository(db)
	relationshipWriteRepo := repositories.NewRelationshipWriteRepository(db)
	assetReadRepo := repositories.NewAssetReadRepository(db)
	assetWriteRepo := repositories.NewAssetWriteRepository(db)
	productReadRepo := repositories.NewProductReadRepository(db)
	productWriteRepo := repositories.NewProductWriteRepository(db)
	activityWriteRepo := repositories.NewActivityWriteRepository(db)
	notificationWriteRepo := repositories.NewNotificationPreferencesWriteRepository(db)
	analyticsReadRepo := repositories.NewAnalyticsReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(
		userReadRepo, userWriteRepo, brandWriteRepo, retailerWriteRepo,
		notificationWriteRepo, activityWriteRepo, tokens,
	)
	userService := services.NewUserService(userReadRepo, userWriteRepo, activityWriteRepo)
	brandService := services.NewBrandService(
		brandReadRepo, brandWriteRepo, productReadRepo, assetReadRepo, activityWriteRepo,
	)
	relationshipService := services.NewRelationshipService(
		relationshipReadRepo, relationshipWriteRepo, brandReadRepo, activityWriteRepo,
	)
	assetService := services.NewAssetService(
		assetReadRepo, assetWriteRepo, brandReadRepo, store, activityWriteRepo,
	)
	productService := services.NewProductService(productWriteRepo, brandReadRepo, activityWriteRepo)
	analyticsService := services.NewAnalyticsService(analyticsReadRepo, brandReadRepo)

	// Initialize metrics
	metrics := observability.NewMetrics()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.ClientInfoMiddleware())
	r.Use(middlewares.MetricsMiddleware(metrics))
	r.Use(middlewares.RateLimitMiddleware(rdb, rateLimit, time.Duration(rateLimitWindowSecond)*time.Second))

	authMiddleware := middlewares.AuthMiddleware(tokens)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			// Registration writes several rows; they commit together.
			r.With(txMiddleware).Post("/auth/register", handlers.NewRegisterHandler(authService))
			r.Post("/auth/login", handlers.NewLoginHandler(authService))
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/users/profile", handlers.NewProfileGetHandler(userService))
			r.Put("/users/profile", handlers.NewProfileUpdateHandler(userService))

			r.Get("/industries", handlers.NewIndustriesHandler(brandService))

			r.Get("/brands", handlers.NewBrandsListHandler(brandService))
			r.Get("/brands/{brandID}", handlers.NewBrandGetHandler(brandService))
			r.Put("/brands/{brandID}", handlers.NewBrandUpdateHandler(brandService))

			r.Post("/brands/{brandID}/assets", handlers.NewAssetsUploadHandler(assetService))
			r.Get("/brands/{brandID}/assets", handlers.NewAssetsListHandler(assetService))
			r.Delete("/brands/{brandID}/assets/{assetID}", handlers.NewAssetDeleteHandler(assetService))

			r.Post("/brands/{brandID}/products", handlers.NewProductCreateHandler(productService))
			r.Put("/brands/{brandID}/products/{productID}", handlers.NewProductUpdateHandler(productService))
			r.Delete("/brands/{brandID}/products/{productID}", handlers.NewProductDeleteHandler(productService))

			r.Get("/relationships", handlers.NewRelationshipsListHandler(relationshipService))
			r.Post("/relationships", handlers.NewRelationshipCreateHandler(relationshipService))
			r.Put("/relationships/{relationshipID}", handlers.NewRelationshipUpdateHandler(relationshipService))
			r.Delete("/relationships/{relationshipID}", handlers.NewRelationshipDeleteHandler(relationshipService))

			r.Get("/analytics/dashboard", handlers.NewDashboardHandler(analyticsService))
		})
	})

	r.Get("/health", handlers.NewHealthHandler(db, redisPinger{rdb: rdb}))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	// Uploaded assets are served statically.
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.Root())))
	r.Get("/uploads/*", uploads.ServeHTTP)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
