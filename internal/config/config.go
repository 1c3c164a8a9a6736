package config

import (
	"log"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName    string `env:"APP_NAME,default=StudyPlanner API"`
	APIVersion string `env:"API_VERSION,default=v1"`
	Port       string `env:"APP_PORT,default=8000"`

	DatabaseURL  string `env:"DATABASE_URL,default=sqlite3://studify.db"`
	AutoMigrate  bool   `env:"AUTO_MIGRATE,default=true"`
	ListMaxLimit int    `env:"LIST_MAX_LIMIT,default=100"`

	// Stands in for an authenticated user until the service has real auth.
	DefaultActorID int64 `env:"DEFAULT_ACTOR_ID,default=1"`

	RateLimitMax        int `env:"RATE_LIMIT_MAX,default=100"`
	RateLimitExpiration int `env:"RATE_LIMIT_EXPIRATION,default=60"`

	OtelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	S3 S3Config
}

type S3Config struct {
	Endpoint     string `env:"S3_ENDPOINT"`
	Region       string `env:"AWS_REGION,default=us-east-1"`
	BucketName   string `env:"S3_BUCKET_NAME"`
	AccessKey    string `env:"AWS_ACCESS_KEY_ID"`
	SecretKey    string `env:"AWS_SECRET_ACCESS_KEY"`
	UsePathStyle bool   `env:"S3_USE_PATH_STYLE,default=false"`
}

// Enabled reports whether avatar uploads can be served.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// Load reads an optional .env file and decodes the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.ListMaxLimit <= 0 {
		cfg.ListMaxLimit = 100
	}

	return cfg, nil
}
