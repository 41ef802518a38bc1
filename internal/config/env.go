package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvEnvironment   = "FEEDBACK_ENVIRONMENT"
	EnvFormURL       = "FEEDBACK_FORM_URL"
	EnvReviewURL     = "FEEDBACK_REVIEW_URL"
	EnvRatingField   = "FEEDBACK_RATING_FIELD"
	EnvCommentField  = "FEEDBACK_COMMENT_FIELD"
	EnvSubmitTimeout = "FEEDBACK_SUBMIT_TIMEOUT"
	EnvSentryDSN     = "SENTRY_DSN"
)

// Runtime defaults
const (
	DefaultEnvironment   = "development"
	DefaultFormURL       = "https://docs.google.com/forms/d/e/1FAIpQLSdb3lxEa2QdG5ve13vM3uij-utYWdUu8gi50PxId1ite-twjg/formResponse"
	DefaultReviewURL     = "https://search.google.com/local/writereview?placeid=ChIJ8Y_Ze2xtpw0RzNsj4JY_suc"
	DefaultRatingField   = "entry.781153381"
	DefaultCommentField  = "entry.1124057666"
	DefaultSubmitTimeout = 10 * time.Second
)

// Config holds runtime configuration that is not a user preference
type Config struct {
	Environment string
	Form        FormConfig
	ReviewURL   string
	SentryDSN   string
}

// FormConfig describes the external form endpoint feedback is posted to
type FormConfig struct {
	URL          string
	RatingField  string
	CommentField string
	Timeout      time.Duration
}

// IsProduction reports whether the production environment is configured
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads configuration from the environment, loading .env first if present
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout := DefaultSubmitTimeout
	if raw := os.Getenv(EnvSubmitTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvSubmitTimeout, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %s", EnvSubmitTimeout, d)
		}
		timeout = d
	}

	cfg := &Config{
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Form: FormConfig{
			URL:          getEnv(EnvFormURL, DefaultFormURL),
			RatingField:  getEnv(EnvRatingField, DefaultRatingField),
			CommentField: getEnv(EnvCommentField, DefaultCommentField),
			Timeout:      timeout,
		},
		ReviewURL: getEnv(EnvReviewURL, DefaultReviewURL),
		SentryDSN: os.Getenv(EnvSentryDSN),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration without reading the environment
func Default() *Config {
	return &Config{
		Environment: DefaultEnvironment,
		Form: FormConfig{
			URL:          DefaultFormURL,
			RatingField:  DefaultRatingField,
			CommentField: DefaultCommentField,
			Timeout:      DefaultSubmitTimeout,
		},
		ReviewURL: DefaultReviewURL,
	}
}

// Validate checks that endpoints are absolute http(s) URLs and field ids are set
func (c *Config) Validate() error {
	if err := validateURL(EnvFormURL, c.Form.URL); err != nil {
		return err
	}
	if err := validateURL(EnvReviewURL, c.ReviewURL); err != nil {
		return err
	}
	if c.Form.RatingField == "" || c.Form.CommentField == "" {
		return fmt.Errorf("form field identifiers must not be empty")
	}
	if c.Form.RatingField == c.Form.CommentField {
		return fmt.Errorf("form field identifiers must differ, both are %q", c.Form.RatingField)
	}
	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must start with http:// or https://", name)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host", name)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
