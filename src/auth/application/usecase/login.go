package usecase

import (
	"context"
	"errors"

	"github.com/Jangel21/restaurante-app/src/auth/application/request"
	"github.com/Jangel21/restaurante-app/src/auth/application/response"
	"github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/auth/domain/port"
	"github.com/Jangel21/restaurante-app/src/auth/infrastructure/token"
)

// LoginUseCase caso de uso para autenticar un usuario
type LoginUseCase struct {
	userRepo port.UserRepository
	tokens   *token.Manager
}

// NewLoginUseCase crea una nueva instancia del caso de uso
func NewLoginUseCase(userRepo port.UserRepository, tokens *token.Manager) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Execute valida las credenciales y emite un token de acceso
func (uc *LoginUseCase) Execute(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, entity.ErrCredentialsRequired
	}

	user, err := uc.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			// No distinguir usuario inexistente de contraseña incorrecta
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		return nil, entity.ErrInvalidCredentials
	}

	if !user.CheckPassword(req.Password) {
		return nil, entity.ErrInvalidCredentials
	}

	accessToken, err := uc.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &response.LoginResponse{
		AccessToken: accessToken,
		User:        user,
	}, nil
}
