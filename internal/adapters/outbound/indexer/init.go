package indexer

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitSubgraphAgentSource builds the key rotator, the gateway client and the agent
// source, and registers the source in the dependency container.
type InitSubgraphAgentSource struct {
	Logger        *log.Logger                `resolve:""`
	HttpClient    *http.Client               `resolve:""`
	TimeProvider  domain.CurrentTimeProvider `resolve:""`
	GatewayURL    string                     `config:"INDEXER_GATEWAY_URL" default:"https://gateway.thegraph.com/api"`
	SubgraphIDs   string                     `config:"INDEXER_SUBGRAPH_IDS"`
	DefaultAPIKey string                     `config:"INDEXER_DEFAULT_API_KEY"`
	UserAPIKey    string                     `config:"INDEXER_USER_API_KEY" default:"-"`
	KeyStrategy   string                     `config:"INDEXER_KEY_STRATEGY" default:"round-robin"`
}

// Initialize registers the SubgraphAgentSource as the domain.AgentSource implementation.
func (i InitSubgraphAgentSource) Initialize(ctx context.Context) (context.Context, error) {
	userKey := i.UserAPIKey
	if userKey == "-" {
		userKey = ""
	}

	rotator, err := NewKeyRotator(i.DefaultAPIKey, userKey, domain.ParseKeyRotationStrategy(i.KeyStrategy), i.TimeProvider, i.Logger)
	if err != nil {
		return ctx, fmt.Errorf("failed to create key rotator: %w", err)
	}

	subgraphs, err := ParseSubgraphIDs(i.SubgraphIDs)
	if err != nil {
		return ctx, fmt.Errorf("failed to parse subgraph ids: %w", err)
	}

	i.Logger.Printf("InitSubgraphAgentSource: %d subgraphs, fallback key configured=%t", len(subgraphs), rotator.HasFallback())

	client := NewSubgraphClient(i.GatewayURL, i.HttpClient, rotator)
	depend.Register[domain.AgentSource](NewSubgraphAgentSource(client, subgraphs))
	return ctx, nil
}
