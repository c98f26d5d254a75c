package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"google.golang.org/grpc"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/config"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/handler"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/notifier"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/repository"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/store"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/usecase"
	"github.com/taskbridgehq/taskbridge-api/shared/auth"
	"github.com/taskbridgehq/taskbridge-api/shared/discovery"
	"github.com/taskbridgehq/taskbridge-api/shared/mailer"
	"github.com/taskbridgehq/taskbridge-api/shared/utilities"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "auth-service").Logger()
	cfg := config.NewAuthServiceConfig(&logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping redis")
	}
	defer redisClient.Close()

	db := mongoClient.Database(cfg.MongoDatabase)
	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)

	kv := store.NewRedisStore(redisClient)
	sessions := store.NewSessionStore(kv)
	grants := store.NewRefreshGrantStore(kv)

	sink := notifier.NewMailerSink(mailer.NewMailer(&logger), cfg.AppVerifyEmailURL, cfg.AppPasswordResetURL)
	dispatcher := notifier.NewDispatcher(sink, &logger, cfg.NotifierQueueSize, cfg.NotifierWorkers)
	defer dispatcher.Close()

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer)
	tokenUsecase := usecase.NewTokenUsecase(userRepo, sessions, grants, jwtAuth, &logger, cfg)
	authUsecase := usecase.NewAuthUsecase(userRepo, sessions, tokenUsecase, dispatcher, cfg)
	verificationUsecase := usecase.NewVerificationUsecase(userRepo, dispatcher)

	grpcServer := grpc.NewServer()
	utilities.RegisterHealthServer(grpcServer)
	handler.RegisterAuthGRPCHandler(grpcServer, authUsecase, tokenUsecase, verificationUsecase, &logger)

	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Host, cfg.GRPCPort))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to listen")
	}

	if cfg.ConsulAddr != "" {
		registry, err := discovery.NewRegistry(cfg.ConsulAddr)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create consul registry")
		}

		instanceID, err := registry.Register(cfg.ServiceName, cfg.Host, cfg.GRPCPort)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to register with consul")
		}
		defer func() {
			if err := registry.Deregister(instanceID); err != nil {
				logger.Error().Err(err).Msg("failed to deregister from consul")
			}
		}()
	}

	go func() {
		logger.Info().Int("port", cfg.GRPCPort).Msg("auth service listening")
		if err := grpcServer.Serve(listener); err != nil {
			logger.Fatal().Err(err).Msg("failed to serve grpc")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down auth service")
	grpcServer.GracefulStop()
}
