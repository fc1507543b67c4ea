package service

import (
	"context"

	"platformone/internal/model"
	"platformone/internal/util"
)

// AuthService issues JWTs with role claims. The staff console's access to
// the reminder endpoints is gated on the role claim server-side, never on
// anything the client stores.
type AuthService struct {
	userRepo  UserRepository
	jwtSecret string
}

func NewAuthService(userRepo UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Login checks user credentials and returns a JWT plus the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !util.CheckPassword(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(u.ID, u.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}
