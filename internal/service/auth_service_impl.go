package service

import (
	"context"
	"errors"
	"time"

	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/identity"
	"github.com/taskflowhq/taskflow/internal/repository"
)

type authService struct {
	users     repository.UserRepo
	refresher identity.Refresher
}

func NewAuthService(users repository.UserRepo, refresher identity.Refresher) AuthService {
	return &authService{users: users, refresher: refresher}
}

// Login returns the existing user for the email, creating the row on first
// login with the provider uid as primary key.
func (s *authService) Login(ctx context.Context, in LoginInput) (*domain.User, error) {
	if in.Email == "" || in.UID == "" {
		return nil, domain.BadRequestf("email and uid are required")
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return u, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	u = &domain.User{
		ID:          in.UID,
		Email:       in.Email,
		DisplayName: in.DisplayName,
		PhotoURL:    in.PhotoURL,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// Two first logins racing on the same email: the unique constraint
		// rejects the loser, who then reads the winner's row.
		if domain.IsKind(err, domain.KindConflict) {
			return s.users.GetByEmail(ctx, in.Email)
		}
		return nil, err
	}
	return u, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*identity.TokenPair, error) {
	pair, err := s.refresher.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidToken) {
			return nil, domain.Unauthorizedf("invalid or expired refresh token")
		}
		return nil, domain.WrapInternal("refreshing token", err)
	}
	return pair, nil
}
