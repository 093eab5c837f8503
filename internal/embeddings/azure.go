package embeddings

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"
)

// AzureEmbedder calls an Azure OpenAI embeddings deployment.
type AzureEmbedder struct {
	deployment string
	client     *openai.Client
}

const defaultEmbeddingTimeout = 30 * time.Second

// NewAzureEmbedder creates an embedder against an Azure OpenAI resource.
// The deployment name is sent as the model and routes the request to the
// right model instance. Client-side retries are disabled, so a failed call
// results in exactly one attempt.
func NewAzureEmbedder(endpoint, apiKey, apiVersion, deployment string, extra ...option.RequestOption) (*AzureEmbedder, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if apiVersion == "" {
		return nil, fmt.Errorf("api version required")
	}
	if deployment == "" {
		return nil, fmt.Errorf("deployment required")
	}
	opts := append([]option.RequestOption{
		azure.WithEndpoint(endpoint, apiVersion),
		azure.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, extra...)
	cli := openai.NewClient(opts...)
	return &AzureEmbedder{
		deployment: deployment,
		client:     &cli,
	}, nil
}

// Embed submits a single-element input list containing text and returns the
// first result's vector.
func (e *AzureEmbedder) Embed(ctx context.Context, text string) (Vector, error) {
	if e == nil || e.client == nil {
		return nil, fmt.Errorf("nil azure client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultEmbeddingTimeout)
	defer cancel()

	resp, err := e.client.Embeddings.New(reqCtx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
		Model: openai.EmbeddingModel(e.deployment),
	})
	if err != nil {
		return nil, fmt.Errorf("azure embeddings request: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("azure embeddings: response contains no data")
	}
	return Vector(resp.Data[0].Embedding), nil
}
