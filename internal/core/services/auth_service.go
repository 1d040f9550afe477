package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/platform/config"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils"
)

// authService implements the AuthSvcFacade interface
type authService struct {
	BaseService
	cfg          *config.Config
	userRepo     portsrepo.UserRepositoryFacade
	oauth2Config *oauth2.Config
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) *authService {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Authenticate verifies a username/password pair. A wrong username and a
// wrong password are indistinguishable to the caller.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "failed to look up user for login", slog.String("username", username))
		return nil, err
	}

	if user.DeletedAt != nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	s.LogInfo(ctx, "user authenticated", slog.String("user_id", user.UserID))
	return user, nil
}

// AuthenticateGoogle verifies a Google ID token and returns the linked
// user, provisioning one on first login.
func (s *authService) AuthenticateGoogle(ctx context.Context, rawIDToken string) (*domain.User, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogWarn(ctx, "google id token validation failed", slog.String("error", err.Error()))
		return nil, apperrors.ErrUnauthorized
	}

	providerID := payload.Subject
	user, err := s.userRepo.FindUserByProviderID(ctx, "google", providerID)
	if err == nil {
		if user.DeletedAt != nil {
			return nil, apperrors.ErrUnauthorized
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to look up google user")
		return nil, err
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	now := time.Now().UTC()
	newUser := domain.User{
		UserID:       uuid.NewString(),
		Username:     email,
		Name:         name,
		AuthProvider: "google",
		ProviderID:   providerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedBy = newUser.UserID

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "failed to provision google user", slog.String("email", email))
		return nil, err
	}

	s.LogInfo(ctx, "google user provisioned", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

// AuthenticateGoogleCode exchanges an authorization code for Google tokens
// and authenticates with the embedded ID token. Used by frontends that run
// the redirect flow instead of Google One Tap.
func (s *authService) AuthenticateGoogleCode(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogWarn(ctx, "google code exchange failed", slog.String("error", err.Error()))
		return nil, apperrors.ErrUnauthorized
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		s.LogWarn(ctx, "google token response missing id_token")
		return nil, apperrors.ErrUnauthorized
	}

	return s.AuthenticateGoogle(ctx, rawIDToken)
}
