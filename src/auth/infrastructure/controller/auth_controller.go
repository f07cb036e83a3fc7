package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jangel21/restaurante-app/src/auth/application/request"
	"github.com/Jangel21/restaurante-app/src/auth/application/usecase"
	"github.com/Jangel21/restaurante-app/src/auth/domain/entity"
)

// AuthController maneja las peticiones HTTP de autenticación
type AuthController struct {
	loginUC *usecase.LoginUseCase
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(loginUC *usecase.LoginUseCase) *AuthController {
	return &AuthController{
		loginUC: loginUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", c.Login)
	}

	log.Println("Rutas Auth disponibles:")
	log.Println("  POST   /api/auth/login")
}

// Login autentica a un usuario y devuelve su token de acceso
func (c *AuthController) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := c.loginUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCredentialsRequired):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		default:
			log.Printf("Error during login: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
