package request

import "github.com/shopspring/decimal"

// CreateMenuItemRequest es el cuerpo para crear un producto del menú
type CreateMenuItemRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Available   *bool           `json:"available"`
	ImageURL    string          `json:"image_url"`
}

// UpdateMenuItemRequest es el cuerpo para actualizar un producto.
// Los campos nil no se modifican.
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Available   *bool            `json:"available"`
	ImageURL    *string          `json:"image_url"`
}
