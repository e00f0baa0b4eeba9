package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mumanager-backend/internal/auth"
	"mumanager-backend/internal/cache"
	"mumanager-backend/internal/mail"
	"mumanager-backend/internal/models"
	"mumanager-backend/internal/repositories"
	"mumanager-backend/internal/timeutil"
)

// resetTokenTTL bounds how long a reset link stays redeemable.
const resetTokenTTL = time.Hour

// ErrResetTokenInvalid marks an unknown or expired reset token.
// Handlers map it to a 400.
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")

type PasswordResetService struct {
	Repo      *repositories.PasswordResetRepository
	Users     *repositories.UserRepository
	Mailer    mail.Mailer
	PublicURL string
}

func NewPasswordResetService(repo *repositories.PasswordResetRepository, users *repositories.UserRepository, mailer mail.Mailer, publicURL string) *PasswordResetService {
	return &PasswordResetService{
		Repo:      repo,
		Users:     users,
		Mailer:    mailer,
		PublicURL: publicURL,
	}
}

// RequestReset issues a single-use token and mails the reset link. Unknown
// emails succeed silently so the endpoint cannot be used to probe accounts.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	if email == "" {
		return ValidationError("email is required")
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return err
	}

	reset := &models.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: timeutil.Now().Add(resetTokenTTL),
	}
	if err := s.Repo.Create(ctx, reset); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.PublicURL, token)
	go func(to, url string) {
		if err := s.Mailer.SendPasswordReset(to, url); err != nil {
			log.Printf("[Mail] Password reset email to %s failed: %v", to, err)
		}
	}(user.Email, resetURL)

	return nil
}

// VerifyToken reports whether a reset token is known and not expired
func (s *PasswordResetService) VerifyToken(ctx context.Context, token string) error {
	reset, err := s.Repo.GetByToken(ctx, token)
	if err != nil {
		return ErrResetTokenInvalid
	}
	if timeutil.Now().After(reset.ExpiresAt) {
		return ErrResetTokenInvalid
	}
	return nil
}

// ResetPassword redeems a token and stores the new password hash. Every
// outstanding token for the user is consumed, not just the redeemed one.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ValidationError("token and password are required")
	}

	reset, err := s.Repo.GetByToken(ctx, token)
	if err != nil {
		return ErrResetTokenInvalid
	}
	if timeutil.Now().After(reset.ExpiresAt) {
		_ = s.Repo.DeleteByToken(ctx, token)
		return ErrResetTokenInvalid
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, reset.UserID, hashedPassword); err != nil {
		return err
	}

	// Old credentials may still sit in the login cache
	if user, err := s.Users.Get(ctx, reset.UserID); err == nil {
		cache.InvalidateAuth(ctx, user.Email)
	}

	return s.Repo.DeleteByUser(ctx, reset.UserID)
}
