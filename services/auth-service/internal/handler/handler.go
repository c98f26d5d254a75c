package handler

import (
	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/usecase"
	authpbv1 "github.com/taskbridgehq/taskbridge-api/shared/protos/auth/v1"
)

type authGRPCHandler struct {
	authpbv1.UnimplementedAuthServiceServer

	authUsecase         usecase.AuthUsecase
	tokenUsecase        usecase.TokenUsecase
	verificationUsecase usecase.VerificationUsecase
	logger              *zerolog.Logger
}

// RegisterAuthGRPCHandler wires the auth service onto a gRPC server.
func RegisterAuthGRPCHandler(
	server *grpc.Server,
	authUsecase usecase.AuthUsecase,
	tokenUsecase usecase.TokenUsecase,
	verificationUsecase usecase.VerificationUsecase,
	logger *zerolog.Logger,
) {
	authpbv1.RegisterAuthServiceServer(server, &authGRPCHandler{
		authUsecase:         authUsecase,
		tokenUsecase:        tokenUsecase,
		verificationUsecase: verificationUsecase,
		logger:              logger,
	})
}
