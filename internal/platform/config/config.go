// Package config carga la configuración del proceso con viper:
// config.yaml opcional (en . o ./config) y variables de entorno por encima.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingJWTSecret: sin JWT_SECRET solo se arranca en modo dev.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required unless AUTH_DEV_MODE=true")

type Config struct {
	Port          string `mapstructure:"PORT"`
	DBDSN         string `mapstructure:"DB_DSN"`
	RunMigrations bool   `mapstructure:"RUN_MIGRATIONS"`

	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	JWTTTL      time.Duration `mapstructure:"JWT_TTL"`
	AuthDevMode bool          `mapstructure:"AUTH_DEV_MODE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	// Admin de bootstrap: solo si vienen los dos.
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	ReadTimeout  time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"WRITE_TIMEOUT"`
}

var defaults = map[string]any{
	"PORT":             "8080",
	"DB_DSN":           "",
	"RUN_MIGRATIONS":   true,
	"JWT_SECRET":       "",
	"JWT_TTL":          "24h",
	"AUTH_DEV_MODE":    false,
	"LOG_LEVEL":        "info",
	"LOG_FORMAT":       "text",
	"APP_NAME":         "pet-shop-api",
	"RATE_LIMIT_RPS":   0,
	"RATE_LIMIT_BURST": 20,
	"ADMIN_EMAIL":      "",
	"ADMIN_PASSWORD":   "",
	"READ_TIMEOUT":     "5s",
	"WRITE_TIMEOUT":    "10s",
}

// Load lee la configuración. paths reemplaza los directorios donde se busca
// config.yaml (por defecto "." y "./config").
func Load(paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")

	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		if !cfg.AuthDevMode {
			return Config{}, ErrMissingJWTSecret
		}
		// Secreto efímero: los tokens mueren con el proceso.
		secret, err := randomSecret()
		if err != nil {
			return Config{}, fmt.Errorf("generate jwt secret: %w", err)
		}
		cfg.JWTSecret = secret
	}
	return cfg, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// BootstrapAdmin indica si hay que asegurar la cuenta admin al arrancar.
func (c Config) BootstrapAdmin() bool {
	return strings.TrimSpace(c.AdminEmail) != "" && c.AdminPassword != ""
}
