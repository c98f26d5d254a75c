package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/notifier"
	"github.com/taskbridgehq/taskbridge-api/services/auth-service/internal/repository"
	"github.com/taskbridgehq/taskbridge-api/shared/security"
)

// VerificationUsecase defines the business logic for email verification and
// password reset.
type VerificationUsecase interface {
	// VerifyEmail consumes a verification token and marks the account
	// verified.
	VerifyEmail(ctx context.Context, token string) error

	// RequestPasswordReset mints a single-use reset token and mails it.
	// Whether or not the email belongs to an account, it behaves the same
	// towards the caller.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword consumes a reset token and stores the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ErrInvalidToken is returned when a verification or reset token matches no
// account.
var ErrInvalidToken = errors.New("invalid token")

type verificationUsecase struct {
	userRepo   repository.UserRepository
	dispatcher *notifier.Dispatcher
}

// NewVerificationUsecase creates a new instance of VerificationUsecase.
func NewVerificationUsecase(
	userRepo repository.UserRepository,
	dispatcher *notifier.Dispatcher,
) VerificationUsecase {
	return &verificationUsecase{
		userRepo:   userRepo,
		dispatcher: dispatcher,
	}
}

func (u *verificationUsecase) VerifyEmail(ctx context.Context, token string) error {
	user, err := u.userRepo.GetUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidToken
		}
		return err
	}

	user.EmailVerified = true
	user.VerificationToken = ""

	if _, err := u.userRepo.SaveUser(ctx, user); err != nil {
		return err
	}

	return nil
}

func (u *verificationUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// To prevent email enumeration, do not reveal that the email does
			// not exist.
			return nil
		}
		return err
	}

	// Overwriting the field invalidates any previously issued reset token.
	token := uuid.NewString()
	user.PasswordResetToken = token

	if _, err := u.userRepo.SaveUser(ctx, user); err != nil {
		return err
	}

	u.dispatcher.Dispatch(notifier.Notification{
		To:       user.Email,
		Subject:  "Reset your password",
		Template: notifier.TemplateResetPassword,
		Context: map[string]string{
			"name":  user.Name,
			"token": token,
		},
	})

	return nil
}

func (u *verificationUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := u.userRepo.GetUserByPasswordResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidToken
		}
		return err
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = passwordHash
	user.PasswordResetToken = ""

	if _, err := u.userRepo.SaveUser(ctx, user); err != nil {
		return err
	}

	return nil
}
