package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Jangel21/restaurante-app/src/auth/domain/entity"
)

// Manager emite y valida tokens JWT firmados con HS256.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager crea un nuevo Manager de tokens.
func NewManager(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    8 * time.Hour, // un turno de trabajo
	}
}

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Generate emite un token de acceso para el usuario.
func (m *Manager) Generate(user *entity.User) (string, error) {
	now := time.Now()
	c := claims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

// Parse valida un token y devuelve el principal que representa.
func (m *Manager) Parse(tokenStr string) (entity.Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return entity.Principal{}, entity.ErrInvalidToken
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return entity.Principal{}, entity.ErrInvalidToken
	}

	role := entity.Role(c.Role)
	if !role.IsValid() {
		return entity.Principal{}, entity.ErrInvalidToken
	}

	return entity.Principal{
		UserID:   userID,
		Username: c.Username,
		Role:     role,
	}, nil
}
