package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool

	// Data Dragon
	DataDragonBaseURL string
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "5005"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		DBDriver:          getEnv("DB_DRIVER", DriverMySQL),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "homewatch"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DBAutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", false),
		DataDragonBaseURL: getEnv("DDRAGON_BASE_URL", "https://ddragon.leagueoflegends.com/cdn"),
	}
	cfg.DBPort = getEnv("DB_PORT", defaultPort(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBDriver != DriverMySQL && c.DBDriver != DriverPostgres {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER environment variable is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD environment variable is required")
	}
	return nil
}

// DSN renders the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
	default:
		// parseTime is needed so DATE columns scan into time.Time
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	}
}

func defaultPort(driver string) string {
	if driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
