package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"DistroFM/config"
	"DistroFM/core/auth"
	"DistroFM/db"
	"DistroFM/logger"
	"DistroFM/repository"

	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	auth.SetSecret(cfg.JWTSecret)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	trackRepo, userRepo := buildRepositories(cfg)

	// Redis is optional; without it logout token revocation is a no-op.
	if cfg.RedisHost != "" {
		if err := db.ConnectRedis(cfg); err != nil {
			logger.Warn("Redis unavailable, session revocation disabled", logger.ErrorField(err))
		} else {
			defer db.CloseRedis()
			logger.Info("Successfully connected to Redis")
		}
	}

	if cfg.SeedDemoData {
		if err := repository.SeedDemoTracks(trackRepo); err != nil {
			logger.Warn("Failed to seed demo tracks", logger.ErrorField(err))
		} else {
			logger.Info("Demo tracks seeded")
		}
	}

	apiHandler := NewAPIHandler(trackRepo, userRepo, cfg)
	server.Handler = NewRouter(apiHandler)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting",
			logger.String("addr", cfg.ServerAddr),
			logger.String("storage", cfg.StorageDriver))

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}

// NewRouter wires all API routes and middleware onto a gorilla/mux router.
func NewRouter(apiHandler *APIHandler) *mux.Router {
	router := mux.NewRouter()

	// CORS middleware
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, HEAD")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Authentication endpoints
	router.HandleFunc("/api/auth/login", apiHandler.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/logout", apiHandler.LogoutHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/register", apiHandler.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/me", apiHandler.AuthMiddleware(apiHandler.MeHandler)).Methods(http.MethodGet)

	// Track endpoints
	router.HandleFunc("/api/tracks", apiHandler.GetTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks", apiHandler.CreateTrackHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/tracks/{id}", apiHandler.GetTrackHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks/{id}", apiHandler.UpdateTrackHandler).Methods(http.MethodPut)
	router.HandleFunc("/api/tracks/{id}", apiHandler.DeleteTrackHandler).Methods(http.MethodDelete)

	// Dashboard
	router.HandleFunc("/api/dashboard/stats", apiHandler.DashboardStatsHandler).Methods(http.MethodGet)

	return router
}

// buildRepositories selects the storage backend from configuration. The
// in-memory store is the default; MySQL implements the same interfaces.
func buildRepositories(cfg *config.Config) (repository.TrackRepository, repository.UserRepository) {
	switch cfg.StorageDriver {
	case "mysql":
		if err := db.ConnectDB(cfg); err != nil {
			logger.Fatal("Failed to connect to database", logger.ErrorField(err))
		}
		if err := db.InitDB(); err != nil {
			logger.Fatal("Failed to initialize database", logger.ErrorField(err))
		}
		return repository.NewMySQLTrackRepository(db.DB), repository.NewMySQLUserRepository(db.DB)
	default:
		return repository.NewMemoryTrackRepository(), repository.NewMemoryUserRepository()
	}
}
