// Package handlers implements the HTTP handlers of the dashboard and ops
// listeners.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeAppError maps an application error to its HTTP status.  Server-side
// failures are masked.
func writeAppError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)
	resp := ErrorResponse{Code: code.String(), Message: err.Error()}
	if status >= http.StatusInternalServerError {
		resp.Message = errors.DefaultMessageForCode(code)
	}
	writeJSON(w, status, resp)
}

//Personal.AI order the ending
