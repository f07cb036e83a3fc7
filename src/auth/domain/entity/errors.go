package entity

import "errors"

var (
	ErrCredentialsRequired = errors.New("username y password son obligatorios")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserInactive        = errors.New("user is inactive")
	ErrForbidden           = errors.New("no tienes permisos para esta acción")
	ErrInvalidToken        = errors.New("invalid or expired token")
)
