package entity

import "errors"

var (
	ErrNameRequired     = errors.New("name is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrInvalidPrice     = errors.New("price must be greater than or equal to 0")
	ErrMenuItemNotFound = errors.New("menu item not found")
)
