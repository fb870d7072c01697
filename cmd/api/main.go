package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/gochifigter/password-generator/internal/config"
	"github.com/gochifigter/password-generator/internal/handler"
	"github.com/gochifigter/password-generator/internal/middleware"
	"github.com/gochifigter/password-generator/internal/repository"
	"github.com/gochifigter/password-generator/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	genService := service.NewGeneratorService(cfg.MinLength, cfg.MaxBatch)

	// Saved profiles and accounts need the database; everything else
	// works without it, so a missing DB only disables those routes.
	var profileRepo *repository.ProfileRepository
	db, dbErr := repository.NewDB(cfg.DatabaseDSN)
	if dbErr != nil {
		slog.Warn("database connection failed — account and saved-profile routes disabled", "error", dbErr)
	} else {
		profileRepo = repository.NewProfileRepository(db)
	}

	profileService := service.NewProfileService(profileRepo, cfg.MinLength)
	genHandler := handler.NewGeneratorHandler(genService, profileService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(10, 20))
		r.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))

		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/generate/pattern", genHandler.HandlePattern)
		r.Post("/api/v1/generate/passphrase", genHandler.HandlePassphrase)
		r.Post("/api/v1/generate/memorable", genHandler.HandleMemorable)
		r.Post("/api/v1/generate/profile/{name}", genHandler.HandleGenerateFromProfile)
		r.Post("/api/v1/strength", genHandler.HandleStrength)
		r.Get("/api/v1/profiles", genHandler.HandleProfiles)
		r.Get("/api/v1/charsets", genHandler.HandleCharsets)
	})

	if dbErr == nil {
		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)
		profileHandler := handler.NewProfileHandler(profileService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/profiles/custom", profileHandler.HandleList)
			r.Post("/api/v1/profiles/custom", profileHandler.HandleSave)
			r.Put("/api/v1/profiles/custom/{name}", profileHandler.HandleUpdate)
			r.Delete("/api/v1/profiles/custom/{name}", profileHandler.HandleDelete)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
