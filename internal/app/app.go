package app

import (
	"github.com/agentauri/agentindex/internal/adapters/inbound/http"
	"github.com/agentauri/agentindex/internal/adapters/inbound/workers"
	"github.com/agentauri/agentindex/internal/adapters/outbound/cache"
	"github.com/agentauri/agentindex/internal/adapters/outbound/config"
	"github.com/agentauri/agentindex/internal/adapters/outbound/indexer"
	"github.com/agentauri/agentindex/internal/adapters/outbound/log"
	"github.com/agentauri/agentindex/internal/adapters/outbound/modelrunner"
	"github.com/agentauri/agentindex/internal/adapters/outbound/postgres"
	"github.com/agentauri/agentindex/internal/adapters/outbound/pubsub"
	"github.com/agentauri/agentindex/internal/adapters/outbound/time"
	"github.com/agentauri/agentindex/internal/telemetry"
	"github.com/agentauri/agentindex/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewAgentIndex creates the agent index application.
// Extra initializers run before the built-in ones, which lets tests register doubles first.
func NewAgentIndex(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitCurrentTimeProvider{},
			&postgres.InitDB{},
			&postgres.InitFeedbackRepository{},
			&postgres.InitAgentEmbeddingRepository{},
			&cache.InitCache{},
			&modelrunner.InitSemanticEncoder{},
			&indexer.InitSubgraphAgentSource{},
			&pubsub.InitClient{},

			&usecases.InitListFeedbackTags{},
			&usecases.InitIndexAgentEmbedding{},
			&usecases.InitReindexAgent{},
		).
		Host(
			&http.AgentIndexServer{},
			&workers.AgentEventSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
