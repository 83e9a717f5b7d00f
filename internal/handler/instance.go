package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/oggyb/omni-notify/internal/omni"
	"github.com/oggyb/omni-notify/internal/request"
	"github.com/oggyb/omni-notify/internal/response"
	"github.com/oggyb/omni-notify/internal/service"
)

// InstanceHandler exposes the gateway's instances and direct sends.
type InstanceHandler struct {
	svc service.InstanceService
}

func NewInstanceHandler(svc service.InstanceService) *InstanceHandler {
	return &InstanceHandler{svc: svc}
}

// List godoc
// @Summary     List gateway instances
// @Description Returns every channel instance configured on the Omni gateway, in gateway order.
// @Tags        instances
// @Produce     json
// @Param       refresh query bool false "Bypass the instance cache"
// @Success     200 {object} response.InstancesResponse
// @Failure     502 {object} response.JSONResponse
// @Failure     503 {object} response.JSONResponse
// @Router      /instances [get]
func (h *InstanceHandler) List(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "true"

	instances, err := h.svc.List(r.Context(), refresh)
	if err != nil {
		response.RespondGatewayError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.InstancesPayload{
		Items: response.FromInstances(instances),
		Total: len(instances),
	})
}

// Healthy godoc
// @Summary     List healthy gateway instances
// @Tags        instances
// @Produce     json
// @Success     200 {object} response.InstancesResponse
// @Failure     502 {object} response.JSONResponse
// @Failure     503 {object} response.JSONResponse
// @Router      /instances/healthy [get]
func (h *InstanceHandler) Healthy(w http.ResponseWriter, r *http.Request) {
	instances, err := h.svc.Healthy(r.Context())
	if err != nil {
		response.RespondGatewayError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.InstancesPayload{
		Items: response.FromInstances(instances),
		Total: len(instances),
	})
}

// SendText godoc
// @Summary     Send text through an instance
// @Description Sends immediately through the gateway. A gateway-reported failure is returned as data, not as an HTTP error.
// @Tags        instances
// @Accept      json
// @Produce     json
// @Param       name    path string                  true "Instance name"
// @Param       request body request.SendTextRequest true "Message"
// @Success     200 {object} response.SendTextResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     502 {object} response.JSONResponse
// @Failure     503 {object} response.JSONResponse
// @Router      /instances/{name}/send-text [post]
func (h *InstanceHandler) SendText(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		response.RespondError(w, http.StatusBadRequest, "instance name is required")
		return
	}

	var req request.SendTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Recipient validation stays with the gateway.
	resp, err := h.svc.SendText(r.Context(), name, omni.SendTextRequest{
		PhoneNumber: req.PhoneNumber,
		UserID:      req.UserID,
		Text:        req.Text,
	})
	if err != nil {
		response.RespondGatewayError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromSendText(resp))
}
