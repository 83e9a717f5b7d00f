package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	domain "github.com/oggyb/omni-notify/internal/domain/notification"
	"github.com/oggyb/omni-notify/internal/request"
	"github.com/oggyb/omni-notify/internal/response"
	"github.com/oggyb/omni-notify/internal/scheduler"
	"github.com/oggyb/omni-notify/internal/service"
)

// NotificationHandler wires HTTP endpoints to the notification service
// and the dispatch scheduler.
type NotificationHandler struct {
	svc   service.NotificationService
	sched scheduler.SchedulerService
}

// NewNotificationHandler constructs a NotificationHandler with its dependencies.
func NewNotificationHandler(svc service.NotificationService, sched scheduler.SchedulerService) *NotificationHandler {
	return &NotificationHandler{svc: svc, sched: sched}
}

// Create godoc
// @Summary     Queue notification
// @Description Stores a pending notification; the scheduler delivers it through the gateway.
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       request body request.NotificationRequest true "Notification"
// @Success     201 {object} response.NotificationResponse
// @Failure     400 {object} response.JSONResponse
// @Router      /notifications [post]
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	n, err := h.svc.Enqueue(r.Context(), service.EnqueueInput{
		Instance:      req.Instance,
		Recipient:     req.Recipient,
		RecipientType: req.RecipientType,
		Text:          req.Text,
	})
	if err != nil {
		respondEnqueueError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, response.FromDomainNotification(n))
}

// CreateTask godoc
// @Summary     Queue task-completion notification
// @Description Notifies the configured recipient that a task finished.
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       request body request.TaskNotificationRequest true "Task"
// @Success     201 {object} response.NotificationResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     409 {object} response.JSONResponse
// @Router      /notifications/task [post]
func (h *NotificationHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req request.TaskNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	n, err := h.svc.NotifyTask(r.Context(), req.Title, req.Status, req.URL)
	if err != nil {
		respondEnqueueError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, response.FromDomainNotification(n))
}

func respondEnqueueError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOmniDisabled):
		response.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEmptyInstance),
		errors.Is(err, domain.ErrNoRecipient),
		errors.Is(err, domain.ErrEmptyText),
		errors.Is(err, domain.ErrTextTooLong),
		errors.Is(err, domain.ErrUnknownRecipientType):
		response.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}

// List godoc
// @Summary     List notifications
// @Description Returns a paginated list of notifications in one status.
// @Tags        notifications
// @Produce     json
// @Param       status query string false "PENDING, SENT or FAILED" default(SENT)
// @Param       page   query int    false "Page number"         default(1)
// @Param       limit  query int    false "Page size (max 100)" default(20)
// @Success     200 {object} response.NotificationsResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     500 {object} response.JSONResponse
// @Router      /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := domain.StatusSent
	if s := q.Get("status"); s != "" {
		parsed, err := domain.ParseStatus(s)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		status = parsed
	}

	page := 1
	limit := 20
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	items, total, err := h.svc.List(r.Context(), status, page, limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.NotificationsPayload{
		Items:  response.FromDomainNotifications(items),
		Status: string(status),
		Total:  total,
		Page:   page,
		Limit:  limit,
	})
}

// ControlScheduler godoc
// @Summary     Control scheduler
// @Description Starts or stops periodic dispatch, or runs one batch now.
// @Tags        scheduler
// @Accept      json
// @Produce     json
// @Param       request body request.SchedulerRequest true "Scheduler action (start|stop|run)"
// @Success     200 {object} response.SchedulerControlResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     409 {object} response.JSONResponse
// @Router      /scheduler [post]
func (h *NotificationHandler) ControlScheduler(w http.ResponseWriter, r *http.Request) {
	var req request.SchedulerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var (
		err error
		msg string
	)
	switch req.Action {
	case "start":
		err = h.sched.Start()
		msg = "scheduler started"
	case "stop":
		err = h.sched.Stop()
		msg = "scheduler stopped"
	case "run":
		err = h.sched.RunNow()
		msg = "batch triggered"
	default:
		response.RespondError(w, http.StatusBadRequest, "action must be 'start', 'stop' or 'run'")
		return
	}

	if errors.Is(err, scheduler.ErrBatchInProgress) {
		response.RespondError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.SchedulerControlPayload{Message: msg})
}
