// Package http exposes the REST API of the agent index.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/agentauri/agentindex/internal/telemetry"
	"github.com/agentauri/agentindex/internal/usecases"
	"github.com/rs/cors"
)

// AgentIndexServer is the REST API HTTP server.
type AgentIndexServer struct {
	Port                    int                       `config:"HTTP_PORT" default:"8080"`
	Logger                  *log.Logger               `resolve:""`
	DB                      *sql.DB                   `resolve:""`
	ListFeedbackTagsUseCase usecases.ListFeedbackTags `resolve:""`
}

// Handler builds the routed, instrumented handler of the API.
func (api AgentIndexServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/feedbacks/tags", api.ListFeedbackTags)
	mux.HandleFunc("GET /healthz", api.Healthz)
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	h := telemetry.Middleware("agentindex-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server.
func (api AgentIndexServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AgentIndexServer: Listening on port %d", api.Port)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AgentIndexServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AgentIndexServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the server is ready by calling its health endpoint.
func (api AgentIndexServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
