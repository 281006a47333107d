package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Port         string `mapstructure:"port"`
	FrontendURL  string `mapstructure:"frontend_url"`  // allowed CORS origin
	Env          string `mapstructure:"app_env"`       // development or production
	PassingScore int    `mapstructure:"passing_score"` // percent needed to pass a quiz
	ContentDir   string `mapstructure:"content_dir"`   // replaces the embedded content when set
	APIURL       string `mapstructure:"api_url"`       // base URL used by the terminal client
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// IsDevelopment reports whether stack details may be exposed
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Load reads configuration from an optional .env file and the environment
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	v := viper.New()
	v.SetDefault("port", "3001")
	v.SetDefault("frontend_url", "http://localhost:3000")
	v.SetDefault("app_env", "development")
	v.SetDefault("passing_score", 70)
	v.SetDefault("content_dir", "")
	v.SetDefault("api_url", "http://localhost:3001/api")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"port", "frontend_url", "app_env", "passing_score", "content_dir", "api_url"} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env != "development" && cfg.Env != "production" {
		return nil, fmt.Errorf("APP_ENV must be development or production, got %q", cfg.Env)
	}
	if cfg.PassingScore < 1 || cfg.PassingScore > 100 {
		return nil, fmt.Errorf("PASSING_SCORE must be between 1 and 100, got %d", cfg.PassingScore)
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}

	return &cfg, nil
}

// LoadConfig initializes AppConfig or stops the process
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	AppConfig = cfg

	if AppConfig.FrontendURL == "http://localhost:3000" {
		log.Println("Warning: Using default FRONTEND_URL. Update it in your environment.")
	}
}
