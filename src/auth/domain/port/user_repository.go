package port

import (
	"context"

	"github.com/Jangel21/restaurante-app/src/auth/domain/entity"
)

// UserRepository define los métodos para consultar usuarios
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
