package response

import "github.com/Jangel21/restaurante-app/src/auth/domain/entity"

// LoginResponse contiene el token de acceso y los datos del usuario
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *entity.User `json:"user"`
}
