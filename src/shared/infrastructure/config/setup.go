package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración de los middlewares compartidos
type SharedConfig struct {
	EnableCORS       bool
	AllowedOrigins   []string
	AllowCredentials bool
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableCORS:       true,
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, cfg SharedConfig) {
	// CORS habilitado para que el frontend de caja pueda consumir la API
	if cfg.EnableCORS {
		corsCfg := cors.DefaultConfig()
		if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
			corsCfg.AllowAllOrigins = true
		} else {
			corsCfg.AllowOrigins = cfg.AllowedOrigins
		}
		corsCfg.AllowCredentials = cfg.AllowCredentials
		corsCfg.AddAllowHeaders("Authorization")
		router.Use(cors.New(corsCfg))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
}
