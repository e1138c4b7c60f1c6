package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DB_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration (tokens are verified, never issued)
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Rate limiting
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	// LDAP configuration, used to resolve student display names
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// Team rules
	StudentEmailDomain string `mapstructure:"STUDENT_EMAIL_DOMAIN"`
	MaxTeamSize        int    `mapstructure:"MAX_TEAM_SIZE"`

	// Client (teamsync) configuration
	APIURL            string        `mapstructure:"TEAMSYNC_API_URL"`
	UserID            string        `mapstructure:"TEAMSYNC_USER_ID"`
	UserEmail         string        `mapstructure:"TEAMSYNC_USER_EMAIL"`
	Token             string        `mapstructure:"TEAMSYNC_TOKEN"`
	PollInitialDelay  time.Duration `mapstructure:"TEAMSYNC_POLL_INITIAL_DELAY"`
	PollInterval      time.Duration `mapstructure:"TEAMSYNC_POLL_INTERVAL"`
	RefreshDelay      time.Duration `mapstructure:"TEAMSYNC_REFRESH_DELAY"`
	HTTPClientTimeout time.Duration `mapstructure:"TEAMSYNC_HTTP_TIMEOUT"`
}

const defaultJWTSecret = "your-secret-key-change-in-production"

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}
	config.StudentEmailDomain = normalizeDomain(config.StudentEmailDomain)

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "gradproject")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("AUTH_ENABLED", false)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Rate limit defaults
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	// LDAP defaults (empty host disables the lookup)
	v.SetDefault("LDAP_HOST", "")
	v.SetDefault("LDAP_PORT", "636")
	v.SetDefault("LDAP_BIND_DN", "")
	v.SetDefault("LDAP_BIND_PW", "")
	v.SetDefault("LDAP_BASE_DN", "")
	v.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	v.SetDefault("LDAP_TIMEOUT_SEC", 10)

	// Team rule defaults
	v.SetDefault("STUDENT_EMAIL_DOMAIN", "stu.bu.edu.sa")
	v.SetDefault("MAX_TEAM_SIZE", 5)

	// Client defaults
	v.SetDefault("TEAMSYNC_API_URL", "http://localhost:5000")
	v.SetDefault("TEAMSYNC_USER_ID", "")
	v.SetDefault("TEAMSYNC_USER_EMAIL", "")
	v.SetDefault("TEAMSYNC_TOKEN", "")
	v.SetDefault("TEAMSYNC_POLL_INITIAL_DELAY", "3s")
	v.SetDefault("TEAMSYNC_POLL_INTERVAL", "30s")
	v.SetDefault("TEAMSYNC_REFRESH_DELAY", "500ms")
	v.SetDefault("TEAMSYNC_HTTP_TIMEOUT", "15s")
}

func buildDatabaseURL(config *Config) string {
	if config.DatabaseDriver == "sqlite" {
		return config.DatabaseName + ".db"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func normalizeDomain(domain string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), "@")
}

func validate(config *Config) error {
	if config.Environment == "production" && config.AuthEnabled {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	switch config.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", config.DatabaseDriver)
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.StudentEmailDomain == "" {
		return fmt.Errorf("student email domain is required")
	}

	if config.MaxTeamSize < 1 {
		return fmt.Errorf("MAX_TEAM_SIZE must be at least 1")
	}

	if config.PollInterval <= 0 {
		return fmt.Errorf("TEAMSYNC_POLL_INTERVAL must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LDAPEnabled reports whether a directory server is configured
func (c *Config) LDAPEnabled() bool {
	return c.LDAPHost != ""
}
