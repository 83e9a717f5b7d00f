package routes

import (
	"net/http"

	_ "github.com/oggyb/omni-notify/internal/docs" // swagger docs
	"github.com/oggyb/omni-notify/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home         HomeHandler
	Notification NotificationHandler
	Instance     InstanceHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ControlScheduler(w http.ResponseWriter, r *http.Request)
}

type InstanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Healthy(w http.ResponseWriter, r *http.Request)
	SendText(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("GET /instances", d.Instance.List)
	mux.HandleFunc("GET /instances/healthy", d.Instance.Healthy)
	mux.HandleFunc("POST /instances/{name}/send-text", d.Instance.SendText)

	mux.HandleFunc("POST /notifications", d.Notification.Create)
	mux.HandleFunc("POST /notifications/task", d.Notification.CreateTask)
	mux.HandleFunc("GET /notifications", d.Notification.List)

	mux.HandleFunc("POST /scheduler", d.Notification.ControlScheduler)

	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback for undefined routes
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
