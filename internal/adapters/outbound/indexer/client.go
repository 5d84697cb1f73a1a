// Package indexer talks to the metered blockchain indexing gateway that serves the
// agent registry subgraphs. Every request goes through a KeyRotator so a rate limited
// or rejected API key is retried once with the alternate key.
package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/agentauri/agentindex/internal/domain"
)

// SubgraphClient is a thin GraphQL client for the indexer gateway.
type SubgraphClient struct {
	gatewayURL string
	http       *http.Client
	rotator    KeyRotator
}

// NewSubgraphClient creates a new client.
func NewSubgraphClient(gatewayURL string, httpClient *http.Client, rotator KeyRotator) SubgraphClient {
	return SubgraphClient{
		gatewayURL: gatewayURL,
		http:       httpClient,
		rotator:    rotator,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// Query runs a GraphQL query against subgraphID and decodes the data field into out.
func (c SubgraphClient) Query(ctx context.Context, subgraphID, query string, variables map[string]any, out any) error {
	if subgraphID == "" {
		return domain.NewValidationErr("subgraph id is required")
	}
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	data, err := ExecuteWithRetry(ctx, c.rotator, func(ctx context.Context, apiKey string) (json.RawMessage, error) {
		return c.post(ctx, apiKey, subgraphID, body)
	})
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}

func (c SubgraphClient) post(ctx context.Context, apiKey, subgraphID string, body []byte) (json.RawMessage, error) {
	endpoint, err := url.JoinPath(c.gatewayURL, "subgraphs", "id", subgraphID)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamErr(domain.UpstreamErrNetwork, 0, "subgraph request failed", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamErr(domain.UpstreamErrNetwork, resp.StatusCode, "read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapStatusToError(resp.StatusCode, respBody)
	}

	var out graphQLResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, domain.NewUpstreamErr(domain.UpstreamErrOther, resp.StatusCode, "unmarshal response", err)
	}
	if len(out.Errors) > 0 {
		messages := make([]string, len(out.Errors))
		for i, e := range out.Errors {
			messages[i] = e.Message
		}
		return nil, domain.NewUpstreamErr(domain.UpstreamErrOther, resp.StatusCode, "subgraph errors: "+strings.Join(messages, "; "), nil)
	}
	return out.Data, nil
}

// mapStatusToError tags a non-2xx gateway response.
func mapStatusToError(statusCode int, body []byte) error {
	message := fmt.Sprintf("non-2xx response: %d %s", statusCode, http.StatusText(statusCode))
	if detail := strings.TrimSpace(string(body)); detail != "" {
		message += ": " + detail
	}

	kind := domain.UpstreamErrOther
	switch statusCode {
	case http.StatusTooManyRequests:
		kind = domain.UpstreamErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = domain.UpstreamErrUnauthorized
	}
	return domain.NewUpstreamErr(kind, statusCode, message, nil)
}
