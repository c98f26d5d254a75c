package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/mbobakov/grpc-consul-resolver"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/taskbridgehq/taskbridge-api/services/api-gateway/internal/config"
	"github.com/taskbridgehq/taskbridge-api/services/api-gateway/internal/handler"
	"github.com/taskbridgehq/taskbridge-api/services/api-gateway/internal/middleware"
	"github.com/taskbridgehq/taskbridge-api/shared/provider"
	authpbv1 "github.com/taskbridgehq/taskbridge-api/shared/protos/auth/v1"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "api-gateway").Logger()
	cfg := config.NewAPIGatewayConfig(&logger)

	authConn, err := grpc.NewClient(
		authServiceTarget(cfg),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultServiceConfig(`{"loadBalancingConfig": [{"round_robin":{}}]}`),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create auth service client")
	}
	defer authConn.Close()

	authClient := authpbv1.NewAuthServiceClient(authConn)
	google := provider.NewGoogleOAuthProvider(cfg.GoogleClientID)
	authHandler := handler.NewAuthHTTPHandler(authClient, google, &logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(&logger))
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Mount("/api/v1/auth", authHandler.Routes(middleware.RequireAuth(authClient, &logger)))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info().Int("port", cfg.HTTPPort).Msg("api gateway listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to serve http")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down api gateway")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down http server")
	}
}

// authServiceTarget prefers Consul discovery and falls back to a static
// address for local runs.
func authServiceTarget(cfg *config.APIGatewayConfig) string {
	if cfg.ConsulAddr != "" {
		return fmt.Sprintf("consul://%s/%s?wait=14s", cfg.ConsulAddr, cfg.AuthServiceName)
	}

	return cfg.AuthServiceAddr
}
