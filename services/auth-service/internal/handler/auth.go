package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/usecase"
	authpbv1 "github.com/taskbridgehq/taskbridge-api/shared/protos/auth/v1"
)

func (h *authGRPCHandler) SignUp(
	ctx context.Context,
	req *authpbv1.SignUpRequest,
) (*authpbv1.StatusResponse, error) {
	if req.GetEmail() == "" || req.GetPassword() == "" || req.GetName() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "email, password and name are required")
	}

	err := h.authUsecase.SignUp(ctx, usecase.SignUpParams{
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
		Name:     req.GetName(),
		Role:     req.GetRole(),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyInUse):
			return nil, status.Errorf(codes.AlreadyExists, "email already in use")
		case errors.Is(err, usecase.ErrPasswordTooShort):
			return nil, status.Errorf(codes.InvalidArgument, "password is too short")
		default:
			h.logger.Error().Err(err).Msg("failed to sign up")
			return nil, status.Errorf(codes.Internal, "something went wrong")
		}
	}

	return &authpbv1.StatusResponse{Message: "Signup successful, please verify your email."}, nil
}

func (h *authGRPCHandler) LogIn(
	ctx context.Context,
	req *authpbv1.LogInRequest,
) (*authpbv1.LogInResponse, error) {
	if req.GetEmail() == "" || req.GetPassword() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "email and password are required")
	}

	result, err := h.authUsecase.LogIn(ctx, usecase.LogInParams{
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return nil, status.Errorf(codes.Unauthenticated, "invalid credentials")
		case errors.Is(err, usecase.ErrEmailNotVerified):
			return nil, status.Errorf(codes.PermissionDenied, "email not verified")
		default:
			h.logger.Error().Err(err).Msg("failed to log in")
			return nil, status.Errorf(codes.Internal, "something went wrong")
		}
	}

	return &authpbv1.LogInResponse{
		Requires_2Fa: result.Requires2FA,
		UserId:       result.UserID,
	}, nil
}

func (h *authGRPCHandler) VerifyTwoFactor(
	ctx context.Context,
	req *authpbv1.VerifyTwoFactorRequest,
) (*authpbv1.TokenPairResponse, error) {
	if req.GetUserId() == "" || req.GetCode() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "user id and code are required")
	}

	tokens, err := h.authUsecase.VerifyTwoFactor(ctx, req.GetUserId(), req.GetCode())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidOrExpiredCode):
			return nil, status.Errorf(codes.Unauthenticated, "invalid or expired 2FA code")
		case errors.Is(err, usecase.ErrSessionExpired):
			return nil, status.Errorf(codes.Unauthenticated, "login session expired, please log in again")
		case errors.Is(err, usecase.ErrUserNotFound):
			return nil, status.Errorf(codes.Unauthenticated, "user not found")
		default:
			h.logger.Error().Err(err).Msg("failed to verify 2FA code")
			return nil, status.Errorf(codes.Internal, "something went wrong")
		}
	}

	return &authpbv1.TokenPairResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (h *authGRPCHandler) SocialLogin(
	ctx context.Context,
	req *authpbv1.SocialLoginRequest,
) (*authpbv1.LogInResponse, error) {
	if req.GetEmail() == "" || req.GetProvider() == "" || req.GetProviderId() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "email, provider and provider id are required")
	}

	result, err := h.authUsecase.SocialLogin(ctx, usecase.SocialLoginParams{
		Email:      req.GetEmail(),
		Name:       req.GetName(),
		Provider:   req.GetProvider(),
		ProviderID: req.GetProviderId(),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnsupportedProvider):
			return nil, status.Errorf(codes.InvalidArgument, "unsupported social provider")
		default:
			h.logger.Error().Err(err).Msg("failed to log in with social provider")
			return nil, status.Errorf(codes.Internal, "something went wrong")
		}
	}

	return &authpbv1.LogInResponse{
		Requires_2Fa: result.Requires2FA,
		UserId:       result.UserID,
	}, nil
}
