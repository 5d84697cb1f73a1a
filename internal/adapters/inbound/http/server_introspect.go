package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectionGraphName is the container name of the rendered Mermaid dependency graph.
const IntrospectionGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS    embed.FS
	introspectTpl = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectPage struct {
	Title string
	Graph string
}

// IntrospectHandler serves the wiring graph of the running service, as an HTML page
// by default or as raw Mermaid source with ?format=mermaid.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	if err != nil {
		respondError(w, ErrorResp{Error: APIError{Code: INTERNALERROR, Message: "dependency graph is not available"}})
		return
	}

	if r.URL.Query().Get("format") == "mermaid" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(graph))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := introspectPage{Title: "AgentIndex Dependency Graph", Graph: graph}
	if err := introspectTpl.Execute(w, page); err != nil {
		respondError(w, ErrorResp{Error: APIError{Code: INTERNALERROR, Message: "failed to render introspection page"}})
	}
}
