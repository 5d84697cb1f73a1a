package indexer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const agentQuery = `query Agent($id: ID!) {
  agent(id: $id) {
    id
    name
    description
    mcpTools
    mcpPrompts
    mcpResources
    a2aSkills
    inputModes
    outputModes
  }
}`

type subgraphAgent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MCPTools     []string `json:"mcpTools"`
	MCPPrompts   []string `json:"mcpPrompts"`
	MCPResources []string `json:"mcpResources"`
	A2ASkills    []string `json:"a2aSkills"`
	InputModes   []string `json:"inputModes"`
	OutputModes  []string `json:"outputModes"`
}

type agentQueryData struct {
	Agent *subgraphAgent `json:"agent"`
}

// SubgraphAgentSource implements domain.AgentSource on top of the per-chain registry subgraphs.
type SubgraphAgentSource struct {
	client    SubgraphClient
	subgraphs map[int64]string
}

// NewSubgraphAgentSource creates a new SubgraphAgentSource. subgraphs maps chain ids to subgraph ids.
func NewSubgraphAgentSource(client SubgraphClient, subgraphs map[int64]string) SubgraphAgentSource {
	return SubgraphAgentSource{
		client:    client,
		subgraphs: subgraphs,
	}
}

// GetAgent fetches an agent from the subgraph of its chain.
func (s SubgraphAgentSource) GetAgent(ctx context.Context, chainID int64, agentID string) (domain.Agent, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("chain_id", chainID),
		attribute.String("agent_id", agentID),
	))
	defer span.End()

	subgraphID, ok := s.subgraphs[chainID]
	if !ok {
		err := domain.NewValidationErr(fmt.Sprintf("no subgraph configured for chain %d", chainID))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Agent{}, false, err
	}

	var data agentQueryData
	err := s.client.Query(spanCtx, subgraphID, agentQuery, map[string]any{"id": agentID}, &data)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Agent{}, false, err
	}
	if data.Agent == nil {
		return domain.Agent{}, false, nil
	}

	return domain.Agent{
		ID:      agentID,
		ChainID: chainID,
		EmbedFields: domain.EmbedFields{
			Name:         data.Agent.Name,
			Description:  data.Agent.Description,
			MCPTools:     data.Agent.MCPTools,
			MCPPrompts:   data.Agent.MCPPrompts,
			MCPResources: data.Agent.MCPResources,
			A2ASkills:    data.Agent.A2ASkills,
			InputModes:   data.Agent.InputModes,
			OutputModes:  data.Agent.OutputModes,
		},
	}, true, nil
}

// ParseSubgraphIDs parses a "chainID=subgraphID" comma separated list.
func ParseSubgraphIDs(s string) (map[int64]string, error) {
	out := map[int64]string{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		chain, id, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("invalid subgraph mapping %q", pair)
		}
		chainID, err := strconv.ParseInt(strings.TrimSpace(chain), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain id in subgraph mapping %q: %w", pair, err)
		}
		out[chainID] = strings.TrimSpace(id)
	}
	return out, nil
}
