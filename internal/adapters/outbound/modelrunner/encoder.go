package modelrunner

import (
	"context"
	"errors"
	"net/http"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SemanticEncoder implements domain.SemanticEncoder on top of the embeddings API.
type SemanticEncoder struct {
	client APIClient
}

// NewSemanticEncoder creates a new SemanticEncoder.
func NewSemanticEncoder(client APIClient) SemanticEncoder {
	return SemanticEncoder{client: client}
}

// VectorizeAgentText implements domain.SemanticEncoder.
func (e SemanticEncoder) VectorizeAgentText(ctx context.Context, model, text string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", model),
		attribute.Int("text_length", len(text)),
	))
	defer span.End()

	vec, err := e.embed(spanCtx, model, promptFormatterFor(model).FormatDocument(text))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (e SemanticEncoder) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	resp, err := e.client.Embeddings(ctx, EmbeddingsRequest{Model: model, Input: input})
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 {
		return domain.EmbeddingVector{}, errors.New("no embedding data in response")
	}
	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// InitSemanticEncoder registers the SemanticEncoder in the dependency container.
type InitSemanticEncoder struct {
	HttpClient *http.Client `resolve:""`
	LLMHost    string       `config:"LLM_MODEL_HOST"`
	LLMAPIKey  string       `config:"LLM_API_KEY" default:"-"`
}

// Initialize registers the domain.SemanticEncoder implementation.
func (i InitSemanticEncoder) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.LLMAPIKey
	if apiKey == "-" {
		apiKey = ""
	}
	depend.Register[domain.SemanticEncoder](NewSemanticEncoder(
		NewAPIClient(i.LLMHost, apiKey, i.HttpClient),
	))
	return ctx, nil
}
