package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se construye una vez en main y se pasa por referencia a quien la necesite.
type Config struct {
	App     AppConfig
	DB      DBConfig
	HTTP    HTTPConfig
	API     APIConfig
	Metrics MetricsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	AutoMigrate bool // aplica el esquema embebido al arrancar la API

	// ForceIPv4 resuelve el host solo a registros A (redes sin IPv6, p. ej. algunos Docker).
	ForceIPv4 bool
	// FallbackDNS servidor DNS (host:puerto) consultado si el resolver del sistema no da registros A.
	// Solo aplica con ForceIPv4; vacío = sin fallback.
	FallbackDNS string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string
	SwaggerFile  string // vacío o inexistente = sin /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig prefijo de rutas y límites de paginación.
type APIConfig struct {
	Prefix       string
	DefaultLimit int
	MaxLimit     int
}

// MetricsConfig exposición de métricas Prometheus.
type MetricsConfig struct {
	Enabled bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, HTTP_PORT, API_PREFIX, etc.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for _, f := range []string{".env", "config.env", "config/config.env"} {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		v.SetConfigFile(f)
		v.SetConfigType("env")
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("leer %s: %w", f, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			MinConns:    v.GetInt32("DB_MIN_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
			ForceIPv4:   v.GetBool("DB_FORCE_IPV4"),
			FallbackDNS: v.GetString("DB_FALLBACK_DNS"),
		},
		HTTP: HTTPConfig{
			Host:         v.GetString("HTTP_HOST"),
			Port:         v.GetInt("HTTP_PORT"),
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),
			CORSOrigins:  splitList(v.GetString("CORS_ORIGINS")),
			SwaggerFile:  v.GetString("SWAGGER_FILE"),
		},
		API: APIConfig{
			Prefix:       strings.TrimRight(v.GetString("API_PREFIX"), "/"),
			DefaultLimit: v.GetInt("API_DEFAULT_LIMIT"),
			MaxLimit:     v.GetInt("API_MAX_LIMIT"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "Terra Foods EMS")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "erp-db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("DB_FORCE_IPV4", false)
	v.SetDefault("DB_FALLBACK_DNS", "")

	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8000)
	v.SetDefault("HTTP_READ_TIMEOUT", 10*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173,http://localhost:5174,http://127.0.0.1:5173,http://127.0.0.1:5174")
	v.SetDefault("SWAGGER_FILE", "./docs/swagger.json")

	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("API_DEFAULT_LIMIT", 100)
	v.SetDefault("API_MAX_LIMIT", 1000)

	v.SetDefault("METRICS_ENABLED", true)
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	if c.API.DefaultLimit <= 0 {
		return fmt.Errorf("config: API_DEFAULT_LIMIT debe ser > 0")
	}
	if c.API.MaxLimit < c.API.DefaultLimit {
		return fmt.Errorf("config: API_MAX_LIMIT (%d) menor que API_DEFAULT_LIMIT (%d)", c.API.MaxLimit, c.API.DefaultLimit)
	}
	if c.DB.MinConns > c.DB.MaxConns {
		return fmt.Errorf("config: DB_MIN_CONNS mayor que DB_MAX_CONNS")
	}
	if c.DB.FallbackDNS != "" {
		if _, _, err := net.SplitHostPort(c.DB.FallbackDNS); err != nil {
			return fmt.Errorf("config: DB_FALLBACK_DNS debe ser host:puerto: %w", err)
		}
	}
	return nil
}

// splitList separa una lista por comas descartando vacíos.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
