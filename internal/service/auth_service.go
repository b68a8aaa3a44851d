package service

import (
	"context"
	"errors"
	"fmt"

	"healthhub/internal/repository"
	"healthhub/internal/session"
	"healthhub/internal/utils"
)

// ErrInvalidCredentials covers both unknown email and wrong password,
// so responses cannot reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService provides authentication related services
type AuthService interface {
	Login(ctx context.Context, email, password string) (*session.Identity, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login verifies credentials against the stored account and returns the
// identity to place into a session. The role and linked patient/doctor
// ids always come from the store, never from the request.
func (s *authService) Login(ctx context.Context, email, password string) (*session.Identity, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding account by email: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials // Email not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials // Password mismatch
	}

	return &session.Identity{
		UserID:    user.ID,
		Role:      user.Role,
		PatientID: user.PatientID,
		DoctorID:  user.DoctorID,
	}, nil
}
