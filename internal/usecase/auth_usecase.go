package usecase

import (
	"errors"

	"github.com/suprimaaldino/pempek-domino/internal/config"
)

var ErrUnauthorized = errors.New("invalid authentication credentials")

// AuthUseCase implements the admin access guard. The token it hands out
// is the static "username:password" secret itself; there is no signing,
// expiry or revocation. Kept for compatibility with the existing API
// contract.
type AuthUseCase struct {
	admin config.AdminConfig
}

func NewAuthUseCase(admin config.AdminConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin}
}

func (uc *AuthUseCase) Login(username, password string) (string, error) {
	if username != uc.admin.Username || password != uc.admin.Password {
		return "", ErrUnauthorized
	}
	return uc.admin.Username + ":" + uc.admin.Password, nil
}

func (uc *AuthUseCase) VerifyToken(token string) error {
	if token == "" || token != uc.admin.Username+":"+uc.admin.Password {
		return ErrUnauthorized
	}
	return nil
}
