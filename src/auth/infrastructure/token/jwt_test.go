package token

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Jangel21/restaurante-app/src/auth/domain/entity"
)

func TestGenerateAndParse(t *testing.T) {
	manager := NewManager("secreto-de-prueba")
	user := &entity.User{
		ID:       uuid.New(),
		Username: "admin",
		Role:     entity.RoleAdmin,
		Active:   true,
	}

	signed, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	principal, err := manager.Parse(signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if principal.UserID != user.ID || principal.Username != "admin" || principal.Role != entity.RoleAdmin {
		t.Fatalf("principal = %+v", principal)
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "admin", Role: entity.RoleAdmin}

	signed, err := NewManager("secreto-a").Generate(user)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewManager("secreto-b").Parse(signed); !errors.Is(err, entity.ErrInvalidToken) {
		t.Fatalf("Parse() error = %v, quería ErrInvalidToken", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	manager := NewManager("secreto-de-prueba")

	for _, tokenStr := range []string{"", "no-es-un-jwt", "a.b.c"} {
		if _, err := manager.Parse(tokenStr); !errors.Is(err, entity.ErrInvalidToken) {
			t.Errorf("Parse(%q) error = %v, quería ErrInvalidToken", tokenStr, err)
		}
	}
}

func TestParseRejectsUnknownRole(t *testing.T) {
	manager := NewManager("secreto-de-prueba")
	user := &entity.User{ID: uuid.New(), Username: "raro", Role: entity.Role("superuser")}

	signed, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := manager.Parse(signed); !errors.Is(err, entity.ErrInvalidToken) {
		t.Fatalf("Parse() error = %v, quería ErrInvalidToken", err)
	}
}
