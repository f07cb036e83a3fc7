package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem representa un producto del menú.
// Los precios de órdenes ya creadas no cambian al editar el producto:
// el precio unitario se congela en cada OrderItem al momento de agregarlo.
type MenuItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Available   bool            `json:"available"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewMenuItem crea un nuevo producto del menú
func NewMenuItem(name string, price decimal.Decimal, category, description, imageURL string, available bool) (*MenuItem, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return nil, ErrNameRequired
	}
	if category == "" {
		return nil, ErrCategoryRequired
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &MenuItem{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		Category:    category,
		Description: description,
		Available:   available,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
