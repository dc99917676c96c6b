package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	Env      string `envconfig:"ENV" default:"production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Completion provider settings
	AIProvider    string   `envconfig:"AI_PROVIDER" default:"openai"`
	AIModel       string   `envconfig:"AI_MODEL"`
	OpenAIAPIKey  string   `envconfig:"OPENAI_API_KEY"`
	OpenAIAPIKeys []string `envconfig:"OPENAI_API_KEYS"`
	OpenAIBaseURL string   `envconfig:"OPENAI_BASE_URL"`
	GeminiAPIKey  string   `envconfig:"GEMINI_API_KEY"`
	GeminiAPIKeys []string `envconfig:"GEMINI_API_KEYS"`

	// Record store settings
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite3"`
	DBPath     string `envconfig:"DB_PATH" default:"course_generator.db"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Course inputs, used in place of interactive prompts when set
	CourseDescription string `envconfig:"COURSE_DESCRIPTION"`
	CourseSubject     string `envconfig:"COURSE_SUBJECT"`
	CourseLevel       string `envconfig:"COURSE_LEVEL"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DataSourceName returns the connection string for the configured driver.
func (c *Config) DataSourceName() (string, error) {
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return "", fmt.Errorf("DB_PATH is required for driver %s", c.DBDriver)
		}
		return c.DBPath, nil
	case DriverPostgres:
		if c.DBName == "" {
			return "", fmt.Errorf("DB_NAME is required for driver %s", c.DBDriver)
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", c.DBDriver)
	}
}
