package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/agentauri/agentindex/internal/domain"
)

// ListFeedbackTags handles GET /api/v1/feedbacks/tags.
//
// chainIds may be repeated and each value may hold a comma separated list.
// limit is clamped by the use case.
func (api AgentIndexServer) ListFeedbackTags(w http.ResponseWriter, r *http.Request) {
	query, err := parseFacetQuery(r)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	result, err := api.ListFeedbackTagsUseCase.Query(r.Context(), query)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondData(w, result)
}

func parseFacetQuery(r *http.Request) (domain.FacetQuery, error) {
	params := r.URL.Query()

	var query domain.FacetQuery
	for _, raw := range params["chainIds"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			chainID, err := strconv.ParseInt(part, 10, 64)
			if err != nil || chainID <= 0 {
				return domain.FacetQuery{}, domain.NewValidationErr("chainIds must be positive integers, got " + strconv.Quote(part))
			}
			query.ChainIDs = append(query.ChainIDs, chainID)
		}
	}

	if raw := strings.TrimSpace(params.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return domain.FacetQuery{}, domain.NewValidationErr("limit must be an integer, got " + strconv.Quote(raw))
		}
		query.Limit = &limit
	}

	return query, nil
}
