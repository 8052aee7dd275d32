/* config.go
 * Contains the Config struct and Load function. Values are read from a .env file if one exists, then from the
 * environment, falling back to defaults where a value is optional
 * Authors: Zachary Bower
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"wahoo-bot/api/external"
	"wahoo-bot/api/logic"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	DiscordProdToken string
	DiscordBetaToken string

	MongoURI string
	MongoDB  string

	BattlefyURL string
	OverbuffURL string
	HTTPTimeout time.Duration

	ScrapeConcurrency int
	ScrapeRPS         float64

	LogLevel string
	WebAddr  string
}

// Load reads the configuration
// Preconditions: Receives logger used to report where values came from
// Postconditions: Returns pointer to the Config, or error if a required value is missing or a value can't be parsed
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	timeout, err := getEnvDuration("HTTP_TIMEOUT", external.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	concurrency, err := getEnvInt("SCRAPE_CONCURRENCY", logic.DefaultConcurrency)
	if err != nil {
		return nil, err
	}
	rps, err := getEnvFloat("SCRAPE_RPS", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DiscordProdToken:  getEnv("DISCORD_PROD_TOKEN", ""),
		DiscordBetaToken:  getEnv("DISCORD_BETA_TOKEN", ""),
		MongoURI:          getEnv("MONGO_PROD_URI", ""),
		MongoDB:           getEnv("MONGO_DB", "wahoo"),
		BattlefyURL:       getEnv("BATTLEFY_BASE_URL", external.DefaultBattlefyURL),
		OverbuffURL:       getEnv("OVERBUFF_BASE_URL", external.DefaultOverbuffURL),
		HTTPTimeout:       timeout,
		ScrapeConcurrency: concurrency,
		ScrapeRPS:         rps,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		WebAddr:           getEnv("WEB_ADDR", ":8080"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_PROD_URI is required")
	}
	if cfg.ScrapeConcurrency < 1 {
		return nil, fmt.Errorf("SCRAPE_CONCURRENCY must be at least 1, got %d", cfg.ScrapeConcurrency)
	}

	logger.Info().
		Str("mongo_db", cfg.MongoDB).
		Str("battlefy_url", cfg.BattlefyURL).
		Str("overbuff_url", cfg.OverbuffURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Int("scrape_concurrency", cfg.ScrapeConcurrency).
		Float64("scrape_rps", cfg.ScrapeRPS).
		Str("log_level", cfg.LogLevel).
		Str("web_addr", cfg.WebAddr).
		Msg("configuration loaded")

	return cfg, nil
}

// DiscordToken returns the token of the production bot, or the beta bot when test is set
func (c *Config) DiscordToken(test bool) (string, error) {
	token, name := c.DiscordProdToken, "DISCORD_PROD_TOKEN"
	if test {
		token, name = c.DiscordBetaToken, "DISCORD_BETA_TOKEN"
	}
	if token == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return token, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
