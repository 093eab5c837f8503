package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"embed-probe/internal/config"
	"embed-probe/internal/embeddings"
	"embed-probe/internal/logger"
)

// Deps bundles the runtime dependencies of the probe.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Embedder embeddings.Embedder
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	// A .env file is an optional convenience; absence is not an error.
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	embedder, err := buildEmbedder(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize embedder: %w", err)
	}
	return Deps{
		Config:   cfg,
		Log:      log,
		Embedder: embedder,
	}, nil
}

func buildEmbedder(cfg config.Config, log *slog.Logger) (embeddings.Embedder, error) {
	switch cfg.EmbeddingsProvider {
	case "azure":
		embedder, err := embeddings.NewAzureEmbedder(cfg.AzureEndpoint, cfg.AzureAPIKey, cfg.AzureAPIVersion, cfg.Deployment)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Azure embedder: %w", err)
		}
		log.Info("using Azure OpenAI embedder", "deployment", cfg.Deployment, "api_version", cfg.AzureAPIVersion)
		return embedder, nil
	default:
		return nil, fmt.Errorf("invalid EMBEDDINGS_PROVIDER: %s (valid option: azure)", cfg.EmbeddingsProvider)
	}
}
