package app

import (
	"context"
	"fmt"
	"log"

	"github.com/agentauri/agentindex/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector renders the dependency graph as Mermaid and registers it
// under http.IntrospectionGraphName for the /introspect page.
type MermaidGraphIntrospector struct {
}

// Introspect generates the graph from the report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, http.IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs every configuration key that fell back to its default.
type ReportLoggerIntrospector struct {
}

// Introspect writes one line per defaulted key to the registered logger.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*log.Logger]()
	if err != nil {
		return fmt.Errorf("report logger: %w", err)
	}
	for _, c := range r.Configs {
		if c.UsedDefault {
			logger.Printf("config: %s using default value", c.Key)
		}
	}
	return nil
}
