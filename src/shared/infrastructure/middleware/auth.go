package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/auth/infrastructure/token"
)

// principalKey es la clave del principal dentro del contexto de gin.
const principalKey = "principal"

// RequireAuth valida el token Bearer y deja el principal en el contexto.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		principal, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// RequireRoles rechaza la petición si el rol del principal no está permitido.
// Debe encadenarse después de RequireAuth.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, ok := CurrentPrincipal(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if !principal.HasAnyRole(roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "No tienes permisos para esta acción",
			})
			return
		}

		ctx.Next()
	}
}

// CurrentPrincipal devuelve el principal autenticado de la petición.
func CurrentPrincipal(ctx *gin.Context) (entity.Principal, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return entity.Principal{}, false
	}
	principal, ok := value.(entity.Principal)
	return principal, ok
}
