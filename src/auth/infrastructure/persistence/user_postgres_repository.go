package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Jangel21/restaurante-app/src/auth/domain/entity"
)

// UserPostgresRepository implementa UserRepository usando PostgreSQL
type UserPostgresRepository struct {
	db *sql.DB
}

// NewUserPostgresRepository crea una nueva instancia del repositorio
func NewUserPostgresRepository(db *sql.DB) *UserPostgresRepository {
	return &UserPostgresRepository{
		db: db,
	}
}

// FindByUsername busca un usuario por su nombre de usuario
func (r *UserPostgresRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, full_name, role, active, created_at
		FROM users
		WHERE username = $1
	`

	user := &entity.User{}
	var fullName sql.NullString
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&fullName,
		&user.Role,
		&user.Active,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	user.FullName = fullName.String

	return user, nil
}
