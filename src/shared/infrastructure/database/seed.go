package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserta los datos iniciales (menú y usuarios) si las tablas están vacías.
func Seed(db *sql.DB) error {
	if err := seedMenu(db); err != nil {
		return err
	}
	return seedUsers(db)
}

type seedMenuItem struct {
	name     string
	price    string
	category string
}

// seedMenu inserta datos iniciales en el menú.
func seedMenu(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return fmt.Errorf("error counting menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	initialItems := []seedMenuItem{
		{"Tacos al Pastor", "45.00", "Tacos"},
		{"Tacos de Asada", "45.00", "Tacos"},
		{"Tacos de Carnitas", "45.00", "Tacos"},
		{"Quesadillas", "55.00", "Antojitos"},
		{"Sopes", "50.00", "Antojitos"},
		{"Enchiladas Verdes", "85.00", "Platos Fuertes"},
		{"Pozole Rojo", "95.00", "Platos Fuertes"},
		{"Chilaquiles", "65.00", "Desayunos"},
		{"Molletes", "55.00", "Desayunos"},
		{"Agua de Horchata", "25.00", "Bebidas"},
		{"Agua de Jamaica", "25.00", "Bebidas"},
		{"Refresco", "30.00", "Bebidas"},
		{"Guacamole", "45.00", "Entradas"},
		{"Nachos", "65.00", "Entradas"},
		{"Flan Napolitano", "40.00", "Postres"},
		{"Pastel Tres Leches", "45.00", "Postres"},
	}

	query := `
		INSERT INTO menu_items (id, name, price, category, available)
		VALUES ($1, $2, $3, $4, TRUE)
	`

	for _, item := range initialItems {
		if _, err := db.Exec(query, uuid.New(), item.name, item.price, item.category); err != nil {
			return fmt.Errorf("error seeding menu item %s: %w", item.name, err)
		}
	}

	log.Printf("Menú inicial cargado (%d productos)", len(initialItems))
	return nil
}

// seedUsers crea los usuarios por defecto.
func seedUsers(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		username string
		password string
		fullName string
		role     string
	}{
		{getEnv("ADMIN_USERNAME", "admin"), getEnv("ADMIN_PASSWORD", "admin123"), "Administrador", "admin"},
		{"cajero1", "cajero123", "María González", "cashier"},
		{"mesero1", "mesero123", "Juan Pérez", "waiter"},
	}

	query := `
		INSERT INTO users (id, username, password_hash, full_name, role, active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
	`

	for _, u := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("error hashing password for %s: %w", u.username, err)
		}
		if _, err := db.Exec(query, uuid.New(), u.username, string(hash), u.fullName, u.role); err != nil {
			return fmt.Errorf("error seeding user %s: %w", u.username, err)
		}
	}

	log.Println("Usuarios por defecto creados (admin, cajero1, mesero1)")
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
