package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y
// opcionalmente archivo .env).
type Config struct {
	App  AppConfig
	API  APIConfig
	Stub StubConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig apunta al backend REST del CRM/e-commerce.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	// Token bearer inicial; vacío = sesión anónima. El almacenamiento
	// seguro del token es un colaborador externo.
	Token string
}

// Timeout duración del timeout HTTP.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StubConfig configuración del backend stub de desarrollo.
type StubConfig struct {
	Host      string
	Port      int
	JWTSecret string
}

// Addr dirección de escucha del stub (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env en el directorio actual). Las env vars tienen prioridad.
// Nombres esperados: APP_ENV, API_BASE_URL, API_TOKEN, STUB_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "crm-ecommerce-cli"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8000/api"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
			Token:          getString(v, "API_TOKEN", ""),
		},
		Stub: StubConfig{
			Host:      getString(v, "STUB_HOST", "0.0.0.0"),
			Port:      getInt(v, "STUB_PORT", 8000),
			JWTSecret: getString(v, "STUB_JWT_SECRET", "stub-secret-solo-desarrollo"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
