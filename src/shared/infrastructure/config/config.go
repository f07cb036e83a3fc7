package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config concentra la configuración del servicio leída del entorno.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	RabbitMQURL string

	TicketOutputDir   string
	PrometheusEnabled bool
}

// Load lee la configuración desde variables de entorno.
// Un archivo .env es opcional (solo desarrollo local).
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "restaurant_db"),
		JWTSecret:         getEnv("JWT_SECRET", "tu-clave-secreta-aqui"),
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		TicketOutputDir:   getEnv("TICKET_OUTPUT_DIR", "tickets"),
		PrometheusEnabled: getEnv("PROMETHEUS_ENABLED", "") == "true",
	}
}

// DatabaseURL arma el string de conexión de PostgreSQL.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
