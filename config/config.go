package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName      string   `env:"LC_APP_NAME" envDefault:"legalconnect"`
	AppEnv       string   `env:"LC_APP_ENV" envDefault:"local"`
	HTTPHost     string   `env:"LC_HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort     string   `env:"LC_HTTP_PORT" envDefault:"5001"`
	HTTPBasePath string   `env:"LC_HTTP_BASE_PATH" envDefault:"/api/v1"`
	CORSOrigins  []string `env:"LC_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`

	DBHost     string `env:"LC_DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"LC_DB_PORT" envDefault:"5432"`
	DBUser     string `env:"LC_DB_USER" envDefault:"app"`
	DBPassword string `env:"LC_DB_PASSWORD" envDefault:"app_password"`
	DBName     string `env:"LC_DB_NAME" envDefault:"legalconnect"`
	DBSSLMode  string `env:"LC_DB_SSLMODE" envDefault:"disable"`

	JWTSecret     string        `env:"LC_JWT_SECRET"`
	JWTPrivateKey string        `env:"LC_JWT_PRIVATE_KEY"`
	JWTPublicKey  string        `env:"LC_JWT_PUBLIC_KEY"`
	JWTAudience   string        `env:"LC_JWT_AUDIENCE" envDefault:"frontend"`
	JWTIssuer     string        `env:"LC_JWT_ISSUER" envDefault:"legalconnect"`
	TokenTTL      time.Duration `env:"LC_JWT_TOKEN_TTL" envDefault:"720h"`

	UploadDir       string `env:"LC_UPLOAD_DIR" envDefault:"uploads"`
	UploadURLPrefix string `env:"LC_UPLOAD_URL_PREFIX" envDefault:"/uploads"`
	UploadMaxBytes  int64  `env:"LC_UPLOAD_MAX_BYTES" envDefault:"5242880"`

	NATSURL               string `env:"NATS_URL"`
	NATSRegisteredSubject string `env:"NATS_SUBJECT_USER_REGISTERED" envDefault:"legalconnect.user.registered"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
