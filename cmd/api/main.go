// cmd/api/main.go
// Main entry point for the VibeSnap API
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/admin"
	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
	"github.com/imadgeboyega/vibesnap-backend/internal/caption"
	"github.com/imadgeboyega/vibesnap-backend/internal/common/logger"
	"github.com/imadgeboyega/vibesnap-backend/internal/config"
	"github.com/imadgeboyega/vibesnap-backend/internal/messaging"
	"github.com/imadgeboyega/vibesnap-backend/internal/metrics"
	notifications "github.com/imadgeboyega/vibesnap-backend/internal/notification"
	"github.com/imadgeboyega/vibesnap-backend/internal/persistence"
	"github.com/imadgeboyega/vibesnap-backend/internal/posts"
	"github.com/imadgeboyega/vibesnap-backend/internal/profile"
	"github.com/imadgeboyega/vibesnap-backend/internal/reels"
	"github.com/imadgeboyega/vibesnap-backend/internal/seed"
	"github.com/imadgeboyega/vibesnap-backend/internal/storage"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
	"github.com/imadgeboyega/vibesnap-backend/internal/stories"
)

var startTime = time.Now()

func main() {
	// 1. Load environment variables
	envErr := godotenv.Load()

	// 2. Load configuration
	cfg := config.Load()

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("========================================")
	log.Info("🚀 Starting VibeSnap API")
	log.Info("========================================")

	log.Info("📁 Step 1: Loading .env file...")
	if envErr != nil {
		log.Warn("⚠️  No .env file found, using environment variables", zap.Error(envErr))
	} else {
		log.Info("✅ .env file loaded successfully")
	}

	log.Info("📋 Step 2: Configuration loaded", zap.String("environment", cfg.Environment), zap.String("store_driver", cfg.StoreDriver))

	// 3. Validate configuration
	log.Info("✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed", zap.Error(err))
	}
	log.Info("✅ Configuration is valid")

	// 4. Open key-value storage
	log.Info("🗄️  Step 4: Opening key-value storage...", zap.String("driver", cfg.StoreDriver))
	ctx := context.Background()
	kv, err := storage.Open(ctx, storage.Options{
		Driver:      cfg.StoreDriver,
		DatabaseURL: cfg.DatabaseURL,
		RedisURL:    cfg.RedisURL,
		KeyPrefix:   cfg.KeyPrefix,
	})
	if err != nil {
		log.Fatal("❌ Failed to open storage", zap.Error(err))
	}
	defer kv.Close()
	log.Info("✅ Storage ready")

	// 5. Seed and hydrate the entity store
	log.Info("🌱 Step 5: Loading fixtures and restoring saved state...")
	initial, err := seed.Load(time.Now())
	if err != nil {
		log.Fatal("❌ Failed to load fixtures", zap.Error(err))
	}

	adapter := persistence.New(kv, log.Named("persistence"))
	initial, err = adapter.Hydrate(ctx, initial)
	if err != nil {
		log.Warn("⚠️  Some saved state could not be read, using fixtures for it", zap.Error(err))
	}

	st := store.New(initial)
	st.Subscribe(adapter)
	st.Subscribe(metrics.MutationObserver{})

	persistCtx, stopPersistence := context.WithCancel(context.Background())
	persistDone := make(chan struct{})
	go func() {
		defer close(persistDone)
		adapter.Run(persistCtx)
	}()
	log.Info("✅ Entity store ready",
		zap.Int("users", len(initial.Users)),
		zap.Int("posts", len(initial.Posts)),
		zap.Bool("logged_in", initial.LoggedIn()))

	// 6. Initialize uploads
	log.Info("📤 Step 6: Initializing upload service...")
	uploadService, err := posts.NewUploadService(posts.UploadConfig{
		UseS3:          cfg.UseS3,
		S3Bucket:       cfg.S3BucketName,
		AWSRegion:      cfg.AWSRegion,
		LocalUploadDir: cfg.LocalUploadDir,
		BaseURL:        cfg.BaseURL,
		MaxSize:        cfg.MaxUploadSize,
	})
	if err != nil {
		log.Fatal("❌ Failed to initialize upload service", zap.Error(err))
	}
	if cfg.UseS3 {
		log.Info("   ✅ Using S3 for uploads", zap.String("bucket", cfg.S3BucketName))
	} else {
		log.Info("   ✅ Using local storage for uploads", zap.String("dir", cfg.LocalUploadDir))
	}

	// 7. Initialize authentication
	log.Info("🔐 Step 7: Initializing authentication system...")
	authService := auth.NewService(st, seed.CurrentUserTemplate(), &auth.Config{
		JWTSecret:     cfg.JWTSecret,
		SessionExpiry: cfg.SessionExpiry,
		LoginDelay:    cfg.LoginDelay,
		ResetDelay:    cfg.ResetDelay,
	}, log.Named("auth"))
	authMiddleware := auth.NewMiddleware(authService)
	authHandler := auth.NewHandler(authService, authMiddleware)
	log.Info("✅ Authentication system initialized")

	// 8. Initialize feature modules
	log.Info("📝 Step 8: Initializing feature modules...")
	postsHandler := posts.NewHandler(posts.NewService(st, uploadService, log.Named("posts")), cfg.MaxUploadSize)
	profileHandler := profile.NewHandler(profile.NewService(st, uploadService, log.Named("profile")), cfg.MaxUploadSize)
	storiesHandler := stories.NewHandler(stories.NewService(st, cfg.StoryTick, log.Named("stories")))
	reelsHandler := reels.NewHandler(reels.NewService(st))
	adminHandler := admin.NewHandler(admin.NewService(st, log.Named("admin")))

	templates, err := notifications.NewTemplateService()
	if err != nil {
		log.Fatal("❌ Failed to parse notification templates", zap.Error(err))
	}
	notificationsHandler := notifications.NewHandler(notifications.NewService(st, templates, log.Named("notifications")))

	messagingService := messaging.NewService(st, cfg.ReplyDelay, log.Named("messaging"))
	messagingHandler := messaging.NewHandler(messagingService)
	authService.OnLogout(messagingService.CancelReplies)

	generator := caption.NewGenerator(caption.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.CaptionModel,
		BaseURL: cfg.CaptionBaseURL,
	}, log.Named("caption"))
	captionHandler := caption.NewHandler(generator)
	if cfg.APIKey == "" {
		log.Warn("⚠️  API_KEY not set, caption generation is disabled")
	}
	log.Info("✅ Feature modules initialized")

	// 9. Setup routes
	log.Info("🛣️  Step 9: Setting up routes...")
	router := mux.NewRouter()

	// Static files for uploads
	if !cfg.UseS3 {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/",
				http.FileServer(http.Dir(cfg.LocalUploadDir))))
		log.Info("   ✅ Static file server configured")
	}

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/api", apiInfo).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	authHandler.RegisterRoutes(router)
	posts.RegisterRoutes(router, postsHandler, authMiddleware)
	profile.RegisterRoutes(router, profileHandler, authMiddleware)
	stories.RegisterRoutes(router, storiesHandler, authMiddleware)
	reels.RegisterRoutes(router, reelsHandler, authMiddleware)
	messaging.RegisterRoutes(router, messagingHandler, authMiddleware)
	notifications.RegisterRoutes(router, notificationsHandler, authMiddleware)
	caption.RegisterRoutes(router, captionHandler, authMiddleware)
	admin.RegisterRoutes(router, adminHandler, authMiddleware)
	log.Info("   ✅ Routes registered")

	handler := withMiddleware(router, log.Named("http"))

	// 10. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("========================================")
		log.Info("🚀 Server starting", zap.String("addr", "http://localhost"+srv.Addr))
		log.Info("🌍 Environment", zap.String("environment", cfg.Environment))
		log.Info("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("⚠️  Shutdown signal received...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("❌ Server forced to shutdown", zap.Error(err))
	}

	log.Info("   - Cancelling pending replies...")
	messagingService.CancelReplies()

	log.Info("   - Flushing saved state...")
	stopPersistence()
	select {
	case <-persistDone:
	case <-shutdownCtx.Done():
		log.Warn("⚠️  Timed out waiting for the persistence writer")
	}

	log.Info("✅ Server exited gracefully")
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// apiInfo returns API information
func apiInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{
        "name": "VibeSnap API",
        "version": "1.0.0",
        "status": "running",
        "endpoints": {
            "health": "GET /health",
            "metrics": "GET /metrics",
            "auth": {
                "submit": "POST /api/auth/submit",
                "signin": "POST /api/auth/signin",
                "signup": "POST /api/auth/signup",
                "forgot": "POST /api/auth/forgot-password",
                "logout": "POST /api/auth/logout",
                "me": "GET /api/auth/me"
            },
            "posts": {
                "feed": "GET /api/v1/posts/feed",
                "explore": "GET /api/v1/posts/explore",
                "mine": "GET /api/v1/posts/mine",
                "create": "POST /api/v1/posts",
                "get": "GET /api/v1/posts/{id}",
                "like": "POST /api/v1/posts/{id}/like",
                "save": "POST /api/v1/posts/{id}/save",
                "byUser": "GET /api/v1/users/{id}/posts"
            },
            "profile": {
                "get": "GET /api/v1/profile",
                "update": "PUT /api/v1/profile",
                "avatar": "POST /api/v1/profile/avatar",
                "user": "GET /api/v1/users/{id}/profile",
                "search": "GET /api/v1/search/users?q="
            },
            "stories": {
                "rail": "GET /api/v1/stories",
                "get": "GET /api/v1/stories/{id}",
                "view": "POST /api/v1/stories/{id}/view"
            },
            "reels": "GET /api/v1/reels",
            "messages": {
                "threads": "GET /api/v1/messages/threads",
                "open": "GET /api/v1/messages/threads/{id}",
                "send": "POST /api/v1/messages/threads/{id}/messages"
            },
            "notifications": {
                "list": "GET /api/v1/notifications",
                "read": "PUT /api/v1/notifications/{id}/read",
                "readAll": "PUT /api/v1/notifications/read-all"
            },
            "caption": {
                "generate": "POST /api/v1/caption",
                "status": "GET /api/v1/caption/status"
            },
            "admin": {
                "stats": "GET /api/v1/admin/stats",
                "users": "GET /api/v1/admin/users?q=",
                "ban": "POST /api/v1/admin/users/{id}/ban",
                "deletePost": "DELETE /api/v1/admin/posts/{id}",
                "reports": "GET /api/v1/admin/reports",
                "resolve": "POST /api/v1/admin/reports/{id}/resolve",
                "dismiss": "POST /api/v1/admin/reports/{id}/dismiss"
            }
        }
    }`))
}

// Middleware functions

// loggingMiddleware logs all requests
func loggingMiddleware(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			log.Info("request",
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.String("remote", r.RemoteAddr),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// withMiddleware wraps the router so preflight requests are answered before
// mux looks for a method match.
func withMiddleware(router *mux.Router, log *zap.Logger) http.Handler {
	router.Use(loggingMiddleware(log))
	return corsMiddleware(router)
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
