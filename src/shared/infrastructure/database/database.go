package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // Driver de PostgreSQL
)

// Connect abre la conexión a PostgreSQL y verifica que responda.
func Connect(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}
