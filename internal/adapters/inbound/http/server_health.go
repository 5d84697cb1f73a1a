package http

import (
	"context"
	"net/http"
	"time"
)

// HealthResp is the body of GET /healthz.
type HealthResp struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Healthz reports whether the service and its database are reachable.
func (api AgentIndexServer) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthResp{Status: "ok", Database: "skipped"}
	if api.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := api.DB.PingContext(ctx); err != nil {
			api.Logger.Printf("AgentIndexServer: database ping failed: %v", err)
			resp.Status = "degraded"
			resp.Database = "unreachable"
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp.Database = "ok"
	}
	respondJSON(w, http.StatusOK, resp)
}
