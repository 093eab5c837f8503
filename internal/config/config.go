package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds the connection parameters for the embedding endpoint.
// It is built once at startup and never mutated afterwards. No validation
// happens here; invalid values surface as a request failure.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Embeddings provider kind; "azure" is the only supported value.
	EmbeddingsProvider string `env:"EMBEDDINGS_PROVIDER" envDefault:"azure"`

	// Azure OpenAI connection parameters. The endpoint and key defaults are
	// placeholders; replace them with your own values or override via env.
	AzureEndpoint   string `env:"AZURE_OPENAI_ENDPOINT" envDefault:"https://YOUR_AZURE_OPENAI_ENDPOINT/"`
	AzureAPIKey     string `env:"AZURE_OPENAI_API_KEY" envDefault:"YOUR_API_KEY"`
	AzureAPIVersion string `env:"AZURE_OPENAI_API_VERSION" envDefault:"2023-05-15"` // Use the version shown in your Azure resource

	// Deployment is the name the embedding model is exposed under; it routes
	// the request to the right model instance.
	Deployment string `env:"EMBEDDING_DEPLOYMENT" envDefault:"ada-embedding-deployment"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
