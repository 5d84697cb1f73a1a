package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agentauri/agentindex/internal/domain"
)

// ErrorCode identifies the class of an API error.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	UPSTREAMERROR ErrorCode = "UPSTREAM_ERROR"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// APIError is the error member of a failed response.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SuccessResp wraps the payload of a successful response.
type SuccessResp struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResp wraps the error of a failed response.
type ErrorResp struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondData(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, SuccessResp{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case BADREQUEST:
		statusCode = http.StatusBadRequest
	case NOTFOUND:
		statusCode = http.StatusNotFound
	case UPSTREAMERROR:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}

func toError(err error) ErrorResp {
	resp := ErrorResp{Error: APIError{Code: INTERNALERROR, Message: err.Error()}}

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	var upstreamErr *domain.UpstreamErr
	switch {
	case errors.As(err, &validationErr):
		resp.Error.Code = BADREQUEST
	case errors.As(err, &notFoundErr):
		resp.Error.Code = NOTFOUND
	case errors.As(err, &upstreamErr):
		resp.Error.Code = UPSTREAMERROR
	}
	return resp
}
