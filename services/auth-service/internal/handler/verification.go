package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/usecase"
	authpbv1 "github.com/taskbridgehq/taskbridge-api/shared/protos/auth/v1"
)

func (h *authGRPCHandler) VerifyEmail(
	ctx context.Context,
	req *authpbv1.VerifyEmailRequest,
) (*authpbv1.StatusResponse, error) {
	if req.GetToken() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "token is required")
	}

	if err := h.verificationUsecase.VerifyEmail(ctx, req.GetToken()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			return nil, status.Errorf(codes.InvalidArgument, "invalid verification token")
		default:
			h.logger.Error().Err(err).Msg("failed to verify email")
			return nil, status.Errorf(codes.Internal, "something went wrong")
		}
	}

	return &authpbv1.StatusResponse{Message: "Email verified successfully."}, nil
}

func (h *authGRPCHandler) RequestPasswordReset(
	ctx context.Context,
	req *authpbv1.RequestPasswordResetRequest,
) (*authpbv1.StatusResponse, error) {
	if req.GetEmail() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "email is required")
	}

	if err := h.verificationUsecase.RequestPasswordReset(ctx, req.GetEmail()); err != nil {
		h.logger.Error().Err(err).Msg("failed to request password reset")
		return nil, status.Errorf(codes.Internal, "something went wrong")
	}

	// The message never reveals whether the address exists.
	return &authpbv1.StatusResponse{Message: "If that email exists, a reset link was sent."}, nil
}

func (h *authGRPCHandler) ResetPassword(
	ctx context.Context,
	req *authpbv1.ResetPasswordRequest,
) (*authpbv1.StatusResponse, error) {
	if req.GetToken() == "" || req.GetNewPassword() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "token and new password are required")
	}

	if err := h.verificationUsecase.ResetPassword(ctx, req.GetToken(), req.GetNewPassword()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			return nil, status.Errorf(codes.InvalidArgument, "invalid or expired reset token")
		case errors.Is(err, usecase.ErrPasswordTooShort):
			return nil, status.Errorf(codes.InvalidArgument, "password is too short")
		default:
			h.logger.Error().Err(err).Msg("failed to reset password")
			return nil, status.Errorf(codes.Internal, "something went wrong")
		}
	}

	return &authpbv1.StatusResponse{Message: "Password reset successfully."}, nil
}
