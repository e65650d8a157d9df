package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Log configures the slog logger shared by both binaries.
type Log struct {
	Level      string `env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	File       string `env:"LOG_FILE" env-description:"optional log file, rotated by size"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" env-default:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"3"`
}

// Server is the configuration of the question-set server.
type Server struct {
	ServerAddress   string        `env:"SERVER_ADDRESS" env-required:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-required:"true"`

	DBPath       string `env:"DB_PATH" env-default:"mcquiz.db"`
	SeedDir      string `env:"SEED_DIR" env-description:"directory of question documents imported at startup"`
	DefaultSetID string `env:"DEFAULT_SET_ID" env-description:"set served at /questions.json; latest when empty"`
	SeedWorkers  int    `env:"SEED_WORKERS" env-default:"4"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" env-default:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" env-default:"20"`
	CORSOrigin     string  `env:"CORS_ORIGIN" env-default:"*"`

	Log Log
}

// Client is the configuration of the terminal quiz.
type Client struct {
	Source      string        `env:"QUIZ_SOURCE" env-default:"http://localhost:8080/questions.json"`
	LoadTimeout time.Duration `env:"LOAD_TIMEOUT" env-default:"10s"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3UseSSL    bool   `env:"S3_USE_SSL" env-default:"false"`

	Log Log
}

// LoadServer reads the server configuration from the environment, after
// loading a .env file if one exists.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClient reads the terminal quiz configuration the same way.
func LoadClient() (*Client, error) {
	var cfg Client
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(cfg any) error {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Usage describes every variable of cfg, for --help output.
func Usage(cfg any) string {
	text, err := cleanenv.GetDescription(cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
