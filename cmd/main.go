package main

import (
	"context"
	"encoding/json"
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
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/snake-game-api/internal/handlers"
	"github.com/sbilibin2017/snake-game-api/internal/jwt"
	"github.com/sbilibin2017/snake-game-api/internal/logger"
	"github.com/sbilibin2017/snake-game-api/internal/middlewares"
	"github.com/sbilibin2017/snake-game-api/internal/password"
	"github.com/sbilibin2017/snake-game-api/internal/repositories"
	"github.com/sbilibin2017/snake-game-api/internal/services"

	_ "github.com/sbilibin2017/snake-game-api/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Snake Game API
// @version 1.0.0
// @description API for Snake Game user accounts and leaderboard
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		jwtSecretKey, jwtExp,
		bcryptCost, seedDemo,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		jwtSecretKey, jwtExp,
		bcryptCost, seedDemo,
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
// application, JWT, hashing, and seeding configuration. The JWT secret has no
// default: startup fails without it, so a hard-coded key can never ship.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExp time.Duration,
	bcryptCost int, seedDemo bool,
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
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "")
	if jwtSecretKey == "" {
		err = errors.New("JWT_SECRET_KEY is required")
		return
	}
	var jwtExpSecond int
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}
	jwtExp = time.Duration(jwtExpSecond) * time.Second

	// Password hashing config; 0 means the bcrypt default
	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "0")); err != nil {
		return
	}

	// Demo data config
	if seedDemo, err = strconv.ParseBool(getEnv("APP_SEED_DEMO", "true")); err != nil {
		return
	}

	return
}

// run initializes the logger, stores, services, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExp time.Duration,
	bcryptCost int, seedDemo bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize stores and crypto primitives
	users := repositories.NewUserRepository()
	scores := repositories.NewScoreRepository()
	hasher := password.New(bcryptCost)
	tokener := jwt.New(jwtSecretKey, jwtExp)

	if seedDemo {
		if err := repositories.SeedDemo(ctx, users, scores, hasher); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		logger.Log.Info("Demo users and scores seeded")
	}

	// Initialize services
	authService := services.NewAuthService(users, hasher, tokener)
	leaderboardService := services.NewLeaderboardService(scores, users)

	// Setup router
	r := newRouter(appHost, appPort, authService, leaderboardService, tokener)

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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter builds the chi router with all middleware and routes attached.
func newRouter(appHost, appPort string,
	authService *services.AuthService,
	leaderboardService *services.LeaderboardService,
	tokener *jwt.JWT,
) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Snake Game API is running"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/signup", handlers.NewSignupHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))
		r.Get("/leaderboard", handlers.NewLeaderboardHandler(leaderboardService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Post("/leaderboard", handlers.NewSubmitScoreHandler(leaderboardService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}
