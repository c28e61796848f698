package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Application struct {
	Name        string        `env:"APP_NAME" env-default:"tm-availability"`
	Environment string        `env:"APP_ENVIRONMENT" env-default:"development"`
	Port        int           `env:"APP_PORT" env-default:"9030"`
	Debug       bool          `env:"APP_DEBUG" env-default:"false"`
	Timeout     time.Duration `env:"APP_TIMEOUT" env-default:"10s"`
	Timezone    string        `env:"APP_TIMEZONE" env-default:"Asia/Jakarta"`
	BaseURL     string        `env:"APP_BASE_URL" env-default:"http://localhost:9030/tm-availability"`
}

type JWT struct {
	PrivateKey string `env:"JWT_PRIVATE_KEY"`
	PublicKey  string `env:"JWT_PUBLIC_KEY"`
}

type PostgreSQL struct {
	Host         string        `env:"POSTGRESQL_HOST" env-default:"localhost"`
	Port         int           `env:"POSTGRESQL_PORT" env-default:"5432"`
	User         string        `env:"POSTGRESQL_USER" env-default:"postgres"`
	Password     string        `env:"POSTGRESQL_PASSWORD" env-default:"postgres"`
	Database     string        `env:"POSTGRESQL_DATABASE" env-default:"tm_availability"`
	SSLMode      string        `env:"POSTGRESQL_SSL_MODE" env-default:"disable"`
	MaxOpenConns int           `env:"POSTGRESQL_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns int           `env:"POSTGRESQL_MAX_IDLE_CONNS" env-default:"5"`
	MaxLifetime  time.Duration `env:"POSTGRESQL_MAX_LIFETIME" env-default:"30m"`
	Migrate      bool          `env:"POSTGRESQL_MIGRATE" env-default:"false"`
}

type Redis struct {
	Address  string `env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Kafka struct {
	BootstrapServers string `env:"KAFKA_BOOTSTRAP_SERVERS" env-default:"localhost:9092"`
	GroupID          string `env:"KAFKA_GROUP_ID" env-default:"tm-availability"`
}

type GCP struct {
	ProjectID      string `env:"GCP_PROJECT_ID"`
	Location       string `env:"GCP_LOCATION" env-default:"asia-southeast2"`
	ServiceAccount string `env:"GCP_SERVICE_ACCOUNT"`
}

type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" env-separator:"," env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" env-separator:"," env-default:"Authorization,Content-Type"`
	ExposedHeaders   []string `env:"CORS_EXPOSED_HEADERS" env-separator:","`
	MaxAge           int      `env:"CORS_MAX_AGE" env-default:"300"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
}

type Checkout struct {
	IntentExpiration time.Duration `env:"CHECKOUT_INTENT_EXPIRATION" env-default:"15m"`
}

type EventCache struct {
	TTL time.Duration `env:"EVENT_CACHE_TTL" env-default:"5m"`
}

type Config struct {
	Application Application
	JWT         JWT
	PostgreSQL  PostgreSQL
	Redis       Redis
	Kafka       Kafka
	GCP         GCP
	CORS        CORS
	Checkout    Checkout
	EventCache  EventCache
}

var (
	c    *Config
	once sync.Once
)

// Get loads the configuration exactly once for the process lifetime. A missing
// .env file is fine; values then come from the real environment.
func Get() *Config {
	once.Do(func() {
		godotenv.Load()

		c = &Config{}
		if err := cleanenv.ReadEnv(c); err != nil {
			log.Fatalf("config: %v", err)
		}
	})

	return c
}
