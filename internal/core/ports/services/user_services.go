package services

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// UserSvcFacade defines operations for managing users
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}

// AuthSvcFacade defines authentication operations
type AuthSvcFacade interface {
	// Authenticate verifies a username/password pair and returns the user.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// AuthenticateGoogle verifies a Google ID token and returns the linked
	// user, creating one on first login.
	AuthenticateGoogle(ctx context.Context, idToken string) (*domain.User, error)

	// AuthenticateGoogleCode exchanges an OAuth authorization code for
	// Google tokens and authenticates with the ID token inside.
	AuthenticateGoogleCode(ctx context.Context, code string) (*domain.User, error)
}
