package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	RedditClientID     string `env:"REDDIT_CLIENT_ID"`
	RedditClientSecret string `env:"REDDIT_CLIENT_SECRET"`
	RedditUsername     string `env:"REDDIT_USERNAME"`
	RedditPassword     string `env:"REDDIT_PASSWORD"`
	RedditUserAgent    string `env:"REDDIT_USER_AGENT" default:"SentimentVSROI/1.0"`

	// Subreddits is the comma-separated set of communities searched for posts.
	Subreddits string `env:"SUBREDDITS" default:"stocks,investing"`

	// WindowDays is the trailing lookback period shared by the price and the
	// forum search window.
	WindowDays int `env:"ANALYSIS_WINDOW_DAYS" default:"30"`

	// UpstreamTimeout bounds each analysis request's provider calls.
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" default:"20s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SubredditList returns the configured subreddits as a cleaned-up slice.
func (c *Config) SubredditList() []string {
	parts := strings.Split(c.Subreddits, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RedditScriptAuth reports whether full script-app credentials are configured.
// Without them the service falls back to Reddit's read-only API.
func (c *Config) RedditScriptAuth() bool {
	return c.RedditClientID != "" && c.RedditClientSecret != "" &&
		c.RedditUsername != "" && c.RedditPassword != ""
}

func validate(cfg *Config) error {
	// Percentage change needs a predecessor day, so a window below two days
	// can never produce a data point.
	if cfg.WindowDays < 2 {
		return fmt.Errorf("ANALYSIS_WINDOW_DAYS must be at least 2, got %d", cfg.WindowDays)
	}
	if cfg.WindowDays > 365 {
		return fmt.Errorf("ANALYSIS_WINDOW_DAYS must be at most 365, got %d", cfg.WindowDays)
	}
	if cfg.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", cfg.UpstreamTimeout)
	}
	if len(cfg.SubredditList()) == 0 {
		return fmt.Errorf("SUBREDDITS must name at least one community")
	}
	if cfg.RedditUserAgent == "" {
		return fmt.Errorf("REDDIT_USER_AGENT must not be empty")
	}
	return nil
}
