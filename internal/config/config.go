package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	PostgresAddress  string `mapstructure:"postgres_address"`
	PostgresPort     string `mapstructure:"postgres_port"`
	PostgresDB       string `mapstructure:"postgres_db"`
	PostgresUsername string `mapstructure:"postgres_username"`
	PostgresPassword string `mapstructure:"postgres_password"`

	HTTPPort        string        `mapstructure:"http_port"`
	LogLevel        string        `mapstructure:"log_level"`
	RedisAddress    string        `mapstructure:"redis_address"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	OperatorWorkers int           `mapstructure:"operator_workers"`

	Engine Engine `mapstructure:"engine"`
}

// Engine holds the tunables handed to the payoff, forecast, budget and
// recommend packages.
type Engine struct {
	MaxMonths        int           `mapstructure:"max_months"`
	ConfidenceLevel  float64       `mapstructure:"confidence_level"`
	SpendWindowDays  int           `mapstructure:"spend_window_days"`
	CategoryValidity time.Duration `mapstructure:"category_validity"`
	CashflowValidity time.Duration `mapstructure:"cashflow_validity"`
	WarningPercent   float64       `mapstructure:"warning_percent"`
	DangerPercent    float64       `mapstructure:"danger_percent"`
}

var envBindings = map[string]string{
	"postgres_address":         "POSTGRES_ADDRESS",
	"postgres_port":            "POSTGRES_PORT",
	"postgres_db":              "POSTGRES_DB",
	"postgres_username":        "POSTGRES_USERNAME",
	"postgres_password":        "POSTGRES_PASSWORD",
	"http_port":                "HTTP_PORT",
	"log_level":                "LOG_LEVEL",
	"redis_address":            "REDIS_ADDRESS",
	"cache_ttl":                "CACHE_TTL",
	"operator_workers":         "OPERATOR_WORKERS",
	"engine.max_months":        "ENGINE_MAX_MONTHS",
	"engine.confidence_level":  "ENGINE_CONFIDENCE_LEVEL",
	"engine.spend_window_days": "ENGINE_SPEND_WINDOW_DAYS",
	"engine.category_validity": "ENGINE_CATEGORY_VALIDITY",
	"engine.cashflow_validity": "ENGINE_CASHFLOW_VALIDITY",
	"engine.warning_percent":   "ENGINE_WARNING_PERCENT",
	"engine.danger_percent":    "ENGINE_DANGER_PERCENT",
}

func ProcessEnvironmentVariables() (*Config, error) {
	v := viper.New()

	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("postgres_address", "localhost")
	v.SetDefault("postgres_port", "5433")
	v.SetDefault("postgres_db", "postgres")
	v.SetDefault("postgres_username", "postgres")
	v.SetDefault("postgres_password", "testpassword")

	v.SetDefault("http_port", "9446")
	v.SetDefault("log_level", "info")
	v.SetDefault("redis_address", "")
	v.SetDefault("cache_ttl", 10*time.Minute)
	v.SetDefault("operator_workers", 4)

	v.SetDefault("engine.max_months", 600)
	v.SetDefault("engine.confidence_level", 0.75)
	v.SetDefault("engine.spend_window_days", 30)
	v.SetDefault("engine.category_validity", 7*24*time.Hour)
	v.SetDefault("engine.cashflow_validity", 3*24*time.Hour)
	v.SetDefault("engine.warning_percent", 80.0)
	v.SetDefault("engine.danger_percent", 100.0)

	v.SetConfigName("finance-engine")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.finance-engine")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var env Config
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &env, nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if c.OperatorWorkers < 1 {
		return fmt.Errorf("operator_workers must be at least 1, got: %d", c.OperatorWorkers)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative, got: %s", c.CacheTTL)
	}
	if c.Engine.MaxMonths < 1 {
		return fmt.Errorf("engine.max_months must be at least 1, got: %d", c.Engine.MaxMonths)
	}
	if c.Engine.ConfidenceLevel <= 0 || c.Engine.ConfidenceLevel > 1 {
		return fmt.Errorf("engine.confidence_level must be within (0, 1], got: %f", c.Engine.ConfidenceLevel)
	}
	if c.Engine.SpendWindowDays < 1 {
		return fmt.Errorf("engine.spend_window_days must be at least 1, got: %d", c.Engine.SpendWindowDays)
	}
	if c.Engine.WarningPercent <= 0 || c.Engine.WarningPercent > c.Engine.DangerPercent {
		return fmt.Errorf("engine.warning_percent must be positive and at most engine.danger_percent, got: %f", c.Engine.WarningPercent)
	}
	return nil
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
