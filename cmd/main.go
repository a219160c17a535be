// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_path_gen/internal/config"
	"go_5_path_gen/internal/handlers"
	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/repository"
	"go_5_path_gen/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.Cfg.App.Name), slog.String("version", config.AppVersion))

	// Database
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Repositories
	userRepo := repository.NewGormUserRepository()
	pathRepo := repository.NewGormPathRepository()
	communityRepo := repository.NewGormCommunityRepository()
	upvoteRepo := repository.NewGormUpvoteRepository()
	commentRepo := repository.NewGormCommentRepository()
	paymentRepo := repository.NewGormPaymentRepository()

	// External providers
	planGenerator := service.NewOpenAIPlanGenerator(&config.Cfg)
	videoProvider, err := service.NewYouTubeVideoProvider(&config.Cfg)
	if err != nil {
		slog.Error("Error initializing YouTube client", slog.Any("error", err))
		os.Exit(1)
	}
	repoProvider := service.NewGitHubRepoProvider(&config.Cfg)
	orderCreator := service.NewRazorpayOrderCreator(&config.Cfg)
	mailer := service.NewMailer(&config.Cfg)

	// Services
	authService := service.NewAuthService(db, userRepo, mailer, &config.Cfg)
	pathService := service.NewPathService(db, pathRepo, planGenerator, videoProvider, repoProvider, &config.Cfg)
	communityService := service.NewCommunityService(db, communityRepo, upvoteRepo, commentRepo, pathRepo, &config.Cfg)
	paymentService := service.NewPaymentService(db, paymentRepo, userRepo, orderCreator, mailer, &config.Cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	pathHandler := handlers.NewPathHandler(pathService)
	communityHandler := handlers.NewCommunityHandler(communityService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Razorpayサーバーからの通知なのでJWT認証の外に置く (署名で検証する)
		r.Post("/payments/razorpay/webhook", paymentHandler.HandleWebhook)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/auth/profile", authHandler.GetMe)

			r.Route("/payments/razorpay", func(r chi.Router) {
				r.Post("/create-order", paymentHandler.CreateOrder)
				r.Post("/verify", paymentHandler.VerifyPayment)
			})

			r.Route("/paths", func(r chi.Router) {
				r.Post("/generate", pathHandler.GeneratePath)
				r.Get("/", pathHandler.ListPaths)
				r.Get("/{path_id}", pathHandler.GetPath)
				r.Delete("/{path_id}", pathHandler.DeletePath)
				r.Patch("/{path_id}/modules/{module_id}/complete", pathHandler.ToggleModuleCompletion)
				r.Post("/{path_id}/publish", communityHandler.Publish)

				// リソース検索はプレミアム限定
				r.Group(func(r chi.Router) {
					r.Use(middleware.PremiumRequiredMiddleware(authService))
					r.Get("/{path_id}/modules/{module_id}/videos", pathHandler.GetModuleVideos)
					r.Get("/{path_id}/modules/{module_id}/repos", pathHandler.GetModuleRepos)
				})
			})

			r.Route("/community", func(r chi.Router) {
				r.Get("/", communityHandler.List)
				r.Get("/{community_path_id}", communityHandler.GetDetails)
				r.Get("/{community_path_id}/comments", communityHandler.ListComments)
				r.Post("/{community_path_id}/upvote", communityHandler.ToggleUpvote)
				r.Post("/{community_path_id}/comments", communityHandler.AddComment)
				r.Post("/{community_path_id}/fork", communityHandler.Fork)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second, // LLM生成が長引くことがあるので余裕を持たせる
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
