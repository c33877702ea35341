package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort              = "8080"
	defaultMigrationsPath    = "file://migrations"
	defaultRecurringInterval = time.Hour
	defaultRateLimit         = "300-M"
	defaultPosthogEndpoint   = "https://eu.i.posthog.com"
	defaultPosthogDistinctID = "openpercento-server"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Recurring rule engine
	RecurringRunInterval time.Duration
	RecurringRunOnStart  bool
	Location             *time.Location // Calendar used to decide what "today" is

	// HTTP surface
	RateLimit          string // ulule/limiter format, e.g. "300-M"
	CORSAllowedOrigins []string

	// Analytics; disabled when PosthogAPIKey is empty
	PosthogAPIKey     string
	PosthogEndpoint   string
	PosthogDistinctID string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("RECURRING_RUN_INTERVAL", defaultRecurringInterval.String())
	viper.SetDefault("RECURRING_RUN_ON_START", true)
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", defaultPosthogEndpoint)
	viper.SetDefault("POSTHOG_DISTINCT_ID", defaultPosthogDistinctID)

	// Environment variables override .env values, which override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	// Load recurring run interval (e.g., "15m", "1h")
	intervalStr := viper.GetString("RECURRING_RUN_INTERVAL")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil || interval <= 0 {
		interval = defaultRecurringInterval
		log.Printf("Warning: Invalid value for RECURRING_RUN_INTERVAL ('%s'). Defaulting to %s.\n", intervalStr, interval.String())
	}
	cfg.RecurringRunInterval = interval
	cfg.RecurringRunOnStart = viper.GetBool("RECURRING_RUN_ON_START")

	tz := viper.GetString("TIMEZONE")
	cfg.Location = time.Local
	if tz != "" && tz != "Local" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("Warning: Unknown TIMEZONE ('%s'). Defaulting to the system local zone.\n", tz)
		} else {
			cfg.Location = loc
		}
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	if cfg.PosthogEndpoint == "" {
		cfg.PosthogEndpoint = defaultPosthogEndpoint
	}
	cfg.PosthogDistinctID = viper.GetString("POSTHOG_DISTINCT_ID")
	if cfg.PosthogDistinctID == "" {
		cfg.PosthogDistinctID = defaultPosthogDistinctID
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
