// Package response provides small helpers for writing JSON API responses
// with a consistent envelope structure.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oggyb/omni-notify/internal/omni"
)

// JSONResponse is the common response envelope for all API endpoints.
type JSONResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorBody  `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// ErrorBody holds details about an API error.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondJSON writes a successful JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	resp := JSONResponse{
		Success:   true,
		Data:      payload,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	writeJSON(w, status, resp)
}

// RespondError writes an error JSON response with the given status code and message.
func RespondError(w http.ResponseWriter, status int, msg string) {
	resp := JSONResponse{
		Success: false,
		Error: &ErrorBody{
			Code:    status,
			Message: msg,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	writeJSON(w, status, resp)
}

// RespondGatewayError maps an Omni client error onto the API envelope.
// The upstream status and body are kept in the message for callers to inspect.
func RespondGatewayError(w http.ResponseWriter, err error) {
	var gwErr *omni.Error
	if !errors.As(err, &gwErr) {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch gwErr.Kind {
	case omni.KindTransport:
		RespondError(w, http.StatusServiceUnavailable, "gateway unreachable: "+gwErr.Message)
	case omni.KindHTTP:
		RespondError(w, http.StatusBadGateway,
			fmt.Sprintf("gateway returned %d: %s", gwErr.Status, strings.TrimSpace(gwErr.Body)))
	default:
		RespondError(w, http.StatusBadGateway, "invalid gateway response: "+gwErr.Error())
	}
}

// writeJSON encodes v as JSON and writes it to the response writer.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
