package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"task-manager/internal/apierror"
)

// NewRouter sets up all routes for the application under /api.
func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tasks", handle(h.ListTasks)).Methods(http.MethodGet)
	api.HandleFunc("/tasks", handle(h.CreateTask)).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{id}", handle(h.GetTask)).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", handle(h.UpdateTask)).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}", handle(h.DeleteTask)).Methods(http.MethodDelete)
	api.HandleFunc("/categories", handle(h.ListCategories)).Methods(http.MethodGet)

	// mux skips middleware for these, so wrap them directly.
	router.NotFoundHandler = requestLogger(handle(func(w http.ResponseWriter, r *http.Request) error {
		return apierror.NotFound("Route not found", r.Method+" "+r.URL.Path+" is not a known endpoint")
	}))
	router.MethodNotAllowedHandler = requestLogger(handle(func(w http.ResponseWriter, r *http.Request) error {
		return apierror.MethodNotAllowed("Method not allowed", r.Method+" is not supported for "+r.URL.Path)
	}))

	return router
}
