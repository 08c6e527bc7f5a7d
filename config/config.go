package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"petstay"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey      string `envconfig:"API_KEY"`
		FrontendURL string `envconfig:"FRONTEND_URL"`
		Access      struct {
			Operators []string `envconfig:"OPERATORS"`
			Staff     []string `envconfig:"STAFF"`
		} `envconfig:"ACCESS"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary RedisEndpoint `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	// Tokens are issued by the identity provider; this service only verifies them.
	JWT struct {
		AccessSecret  string `envconfig:"ACCESS_SECRET"`
		RefreshSecret string `envconfig:"REFRESH_SECRET"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY"       default:"5"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Rooms struct {
		Dog struct {
			Count       int    `envconfig:"COUNT"        default:"10"`
			FirstNumber int    `envconfig:"FIRST_NUMBER" default:"101"`
			Prefix      string `envconfig:"PREFIX"       default:"D"`
		} `envconfig:"DOG"`
		Cat struct {
			Count       int    `envconfig:"COUNT"        default:"10"`
			FirstNumber int    `envconfig:"FIRST_NUMBER" default:"201"`
			Prefix      string `envconfig:"PREFIX"       default:"C"`
		} `envconfig:"CAT"`
	} `envconfig:"ROOMS"`

	Events struct {
		Driver string `envconfig:"DRIVER" default:"kafka"`
		Topic  string `envconfig:"TOPIC"  default:"petstay.booking.events"`
		Source string `envconfig:"SOURCE" default:"PetStay.Booking"`
	} `envconfig:"EVENTS"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"petstay-stats"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	RabbitMQ struct {
		URL      string `envconfig:"URL"`
		Exchange string `envconfig:"EXCHANGE" default:"petstay.events"`
		Queue    string `envconfig:"QUEUE"    default:"petstay.stats"`
	} `envconfig:"RABBITMQ"`

	Stats struct {
		Channel string `envconfig:"CHANNEL" default:"petstay:admin:stats"`
	} `envconfig:"STATS"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint          string `envconfig:"API_ENDPOINT"`
			AccessKeyID          string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey      string `envconfig:"SECRET_ACCESS_KEY"`
			Region               string `envconfig:"REGION"                 default:"auto"`
			BucketName           string `envconfig:"BUCKET_NAME"`
			PhotoBucketName      string `envconfig:"PHOTO_BUCKET_NAME"`
			PublicDomain         string `envconfig:"PUBLIC_DOMAIN"`
			PresignExpireSeconds int    `envconfig:"PRESIGN_EXPIRE_SECONDS" default:"3600"`
			UploadExpireSeconds  int    `envconfig:"UPLOAD_EXPIRE_SECONDS"  default:"300"`
		} `envconfig:"S3"`
		SES struct {
			Region          string   `envconfig:"REGION"`
			AccessKeyID     string   `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string   `envconfig:"SECRET_ACCESS_KEY"`
			Sender          string   `envconfig:"SENDER"`
			Recipients      []string `envconfig:"RECIPIENTS"`
		} `envconfig:"SES"`
	} `envconfig:"EXTERNAL"`
}

type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type RedisEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
