package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/oggyb/omni-notify/internal/response"
)

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HomeHandler serves the root and health endpoints.
type HomeHandler struct {
	deps map[string]Pinger
}

// NewHomeHandler returns a HomeHandler whose health check pings deps.
func NewHomeHandler(deps map[string]Pinger) *HomeHandler {
	return &HomeHandler{deps: deps}
}

// Index godoc
// @Summary     Welcome endpoint
// @Description Simple root endpoint that returns a welcome message.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, response.WelcomePayload{
		Message: "Welcome to Omni Notify",
	})
}

// Health godoc
// @Summary     Health check
// @Description Pings the database and cache. Returns 503 when any of them is down.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Failure     503 {object} response.HealthResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	payload := response.HealthPayload{Status: "ok"}
	code := http.StatusOK

	for _, name := range names {
		state := "ok"
		if err := h.deps[name].Ping(ctx); err != nil {
			state = err.Error()
			payload.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
		if payload.Components == nil {
			payload.Components = map[string]string{}
		}
		payload.Components[name] = state
	}

	response.RespondJSON(w, code, payload)
}
