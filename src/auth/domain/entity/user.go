package entity

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role es el rol de un usuario del sistema.
type Role string

const (
	RoleAdmin   Role = "admin"   // caja/gerente
	RoleCashier Role = "cashier" // cajero
	RoleWaiter  Role = "waiter"  // mesero
)

// IsValid indica si el rol es uno de los reconocidos.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCashier, RoleWaiter:
		return true
	}
	return false
}

// User representa un usuario para autenticación y roles.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// SetPassword almacena el hash bcrypt de la contraseña.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compara la contraseña contra el hash almacenado.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Principal identifica al usuario autenticado que invoca una operación.
// Los casos de uso reciben el Principal de forma explícita, nunca lo
// leen de un contexto ambiental.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}

// HasAnyRole indica si el rol del principal está dentro de los permitidos.
func (p Principal) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
