package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	RabbitMQ RabbitMQ

	Postgres Postgres `validate:"required"`

	Outbox Outbox `validate:"required"`

	Auth Auth `validate:"required"`

	Cache Cache

	Fanout Fanout

	Payment Payment `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	OrdersTopic     string `validate:"required"`
	EmailTopic      string `validate:"required"`
	SMSTopic        string `validate:"required"`
	ConsumerEnabled bool

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type RabbitMQ struct {
	URL        string `validate:"required_if=Enabled true"`
	EmailQueue string `validate:"required"`
	SMSQueue   string `validate:"required"`
	Enabled    bool
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Outbox struct {
	Broker      string        `validate:"required,oneof=kafka rabbitmq"`
	Interval    time.Duration `validate:"gt=0"`
	BatchSize   int           `validate:"gte=1,lte=1000"`
	MaxAttempts int           `validate:"gte=1"`
}

type Auth struct {
	ProjectID       string `validate:"required"`
	CredentialsFile string
	SessionCookie   string `validate:"required"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Fanout struct {
	Concurrency int           `validate:"gte=1"`
	Timeout     time.Duration `validate:"gt=0"`
}

type Payment struct {
	Provider string `validate:"required"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "order-service"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			OrdersTopic:     env("KAFKA_ORDERS_TOPIC", "order-commands"),
			EmailTopic:      env("KAFKA_EMAIL_TOPIC", "notifications.email"),
			SMSTopic:        env("KAFKA_SMS_TOPIC", "notifications.sms"),
			ConsumerEnabled: envBool("KAFKA_CONSUMER_ENABLED", false),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		RabbitMQ: RabbitMQ{
			URL:        env("RABBITMQ_URL", ""),
			EmailQueue: env("RABBITMQ_EMAIL_QUEUE", "notifications.email"),
			SMSQueue:   env("RABBITMQ_SMS_QUEUE", "notifications.sms"),
			Enabled:    env("OUTBOX_BROKER", "kafka") == "rabbitmq",
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "marketplace"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Outbox: Outbox{
			Broker:      env("OUTBOX_BROKER", "kafka"),
			Interval:    envDuration("OUTBOX_INTERVAL", time.Second),
			BatchSize:   envInt("OUTBOX_BATCH_SIZE", 50),
			MaxAttempts: envInt("OUTBOX_MAX_ATTEMPTS", 5),
		},

		Auth: Auth{
			ProjectID:       env("FIREBASE_PROJECT_ID", ""),
			CredentialsFile: env("GOOGLE_APPLICATION_CREDENTIALS", ""),
			SessionCookie:   env("SESSION_COOKIE_NAME", "session"),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Fanout: Fanout{
			Concurrency: envInt("FANOUT_CONCURRENCY", 8),
			Timeout:     envDuration("FANOUT_TIMEOUT", 5*time.Second),
		},

		Payment: Payment{
			Provider: env("PAYMENT_PROVIDER", "mock"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
