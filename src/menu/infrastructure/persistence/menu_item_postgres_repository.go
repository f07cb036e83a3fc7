package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Jangel21/restaurante-app/src/menu/domain/entity"
)

// MenuItemPostgresRepository implementa MenuItemRepository usando PostgreSQL
type MenuItemPostgresRepository struct {
	db *sql.DB
}

// NewMenuItemPostgresRepository crea una nueva instancia del repositorio
func NewMenuItemPostgresRepository(db *sql.DB) *MenuItemPostgresRepository {
	return &MenuItemPostgresRepository{
		db: db,
	}
}

// List devuelve los productos disponibles, opcionalmente filtrados por categoría
func (r *MenuItemPostgresRepository) List(ctx context.Context, category string) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, name, price, category, description, available, image_url, created_at, updated_at
		FROM menu_items
		WHERE available = TRUE
	`
	args := []interface{}{}

	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}

	query += ` ORDER BY category, name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing menu items: %w", err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// FindByID busca un producto por su ID
func (r *MenuItemPostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	query := `
		SELECT id, name, price, category, description, available, image_url, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`

	item, err := scanMenuItem(r.db.QueryRowContext(ctx, query, id))
	if err == errNoMenuItem {
		return nil, entity.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

// Save persiste un nuevo producto
func (r *MenuItemPostgresRepository) Save(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (
			id, name, price, category, description, available, image_url, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Price,
		item.Category,
		item.Description,
		item.Available,
		item.ImageURL,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving menu item: %w", err)
	}

	return nil
}

// Update actualiza un producto existente
func (r *MenuItemPostgresRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, price = $3, category = $4, description = $5,
			available = $6, image_url = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Price,
		item.Category,
		item.Description,
		item.Available,
		item.ImageURL,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating menu item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrMenuItemNotFound
	}

	return nil
}

// Delete elimina un producto del menú
func (r *MenuItemPostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting menu item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrMenuItemNotFound
	}

	return nil
}

// Categories devuelve las categorías registradas en el menú
func (r *MenuItemPostgresRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM menu_items ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("error scanning category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

var errNoMenuItem = sql.ErrNoRows

func scanMenuItem(row rowScanner) (*entity.MenuItem, error) {
	item := &entity.MenuItem{}
	var description, imageURL sql.NullString

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Category,
		&description,
		&item.Available,
		&imageURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errNoMenuItem
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning menu item: %w", err)
	}

	item.Description = description.String
	item.ImageURL = imageURL.String

	return item, nil
}
