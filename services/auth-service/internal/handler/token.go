package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/usecase"
	authpbv1 "github.com/taskbridgehq/taskbridge-api/shared/protos/auth/v1"
)

func (h *authGRPCHandler) RefreshToken(
	ctx context.Context,
	req *authpbv1.RefreshTokenRequest,
) (*authpbv1.RefreshTokenResponse, error) {
	if req.GetRefreshToken() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "refresh token is required")
	}

	accessToken, err := h.tokenUsecase.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRefreshToken):
			return nil, status.Errorf(codes.Unauthenticated, "invalid refresh token")
		case errors.Is(err, usecase.ErrUserNotFound):
			return nil, status.Errorf(codes.Unauthenticated, "user not found")
		default:
			h.logger.Error().Err(err).Msg("failed to refresh token")
			return nil, status.Errorf(codes.Internal, "something went wrong")
		}
	}

	return &authpbv1.RefreshTokenResponse{AccessToken: accessToken}, nil
}

func (h *authGRPCHandler) Logout(
	ctx context.Context,
	req *authpbv1.LogoutRequest,
) (*authpbv1.StatusResponse, error) {
	h.tokenUsecase.Logout(ctx, req.GetAccessToken())

	return &authpbv1.StatusResponse{Message: "Logged out successfully."}, nil
}

func (h *authGRPCHandler) ValidateToken(
	ctx context.Context,
	req *authpbv1.ValidateTokenRequest,
) (*authpbv1.ValidateTokenResponse, error) {
	if req.GetAccessToken() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "access token is required")
	}

	claims, err := h.tokenUsecase.ValidateAccessToken(ctx, req.GetAccessToken())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAccessToken):
			return nil, status.Errorf(codes.Unauthenticated, "invalid access token")
		default:
			h.logger.Error().Err(err).Msg("failed to validate access token")
			return nil, status.Errorf(codes.Internal, "something went wrong")
		}
	}

	return &authpbv1.ValidateTokenResponse{
		UserId: claims.UserID,
		Role:   claims.Role,
		Email:  claims.Email,
	}, nil
}
