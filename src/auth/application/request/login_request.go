package request

// LoginRequest es el cuerpo de la petición de login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
