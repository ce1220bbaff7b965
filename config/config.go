package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

var conf = mustLoad()

type Config struct {
	Configuration struct {
		Port string `envconfig:"PORT" default:"8080"`

		// Genius search API
		GeniusAccessToken string `envconfig:"GENIUS_ACCESS_TOKEN" default:""`
		GeniusAPIURL      string `envconfig:"GENIUS_API_URL" default:"https://api.genius.com/search"`

		// Lyrics page scraping
		LyricsBaseURL            string `envconfig:"LYRICS_BASE_URL" default:"https://genius.com"`
		UpstreamTimeoutInSeconds int    `envconfig:"UPSTREAM_TIMEOUT_IN_SECONDS" default:"10"` // 0 disables the client timeout

		// Model providers
		ModelProvider string `envconfig:"MODEL_PROVIDER" default:"openai"`
		OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY" default:""`
		OpenAIAPIURL  string `envconfig:"OPENAI_API_URL" default:"https://api.openai.com/v1"`
		OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`
		GeminiAPIKey  string `envconfig:"GEMINI_API_KEY" default:""`
		GeminiModel   string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`

		// Cache backend: empty path keeps the cache in memory only
		LyricsCachePath string `envconfig:"LYRICS_CACHE_PATH" default:""`

		// Admin endpoints (/stats, /cache*) require this token
		AdminAccessToken string `envconfig:"ADMIN_ACCESS_TOKEN" default:""`

		CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
		SentryDSN          string `envconfig:"SENTRY_DSN" default:""`
	}

	FeatureFlags struct {
		CacheCompression bool `envconfig:"FF_CACHE_COMPRESSION" default:"true"`
	}
}

// load loads the configuration from the environment.
func load() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Warnf("Error loading env config: %v", err)
	}

	cfg := Config{}
	err = envconfig.Process("", &cfg)
	return cfg, err
}

func mustLoad() Config {
	c, err := load()
	if err != nil {
		log.WithError(err).Warnf("Unable to load configuration")
	}

	return c
}

func Get() Config {
	return conf
}
