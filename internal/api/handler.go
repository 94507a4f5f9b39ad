// Package api exposes the task endpoints over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"task-manager/internal/apierror"
	"task-manager/internal/service"
)

// Handler aggregates the services behind the HTTP surface.
type Handler struct {
	tasks      *service.TaskService
	categories *service.CategoryService
}

func NewHandler(tasks *service.TaskService, categories *service.CategoryService) *Handler {
	return &Handler{tasks: tasks, categories: categories}
}

// handlerFunc is an endpoint that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle turns every returned error or panic into the JSON error body. Once
// the endpoint has started its response the failure is only logged.
func handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		fail := func(err error) {
			if sw.wrote {
				log.Printf("[error] %s %s (%s): response already sent: %v", r.Method, r.URL.Path, requestID(r.Context()), err)
				return
			}
			writeError(sw, r, err)
		}
		defer func() {
			if rec := recover(); rec != nil {
				fail(apierror.Database("Internal server error", fmt.Sprint(rec)))
			}
		}()

		if err := fn(sw, r); err != nil {
			fail(err)
		}
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apierror.Translate(err)
	log.Printf("[error] %s %s (%s): %v %v", r.Method, r.URL.Path, requestID(r.Context()), err, apiErr.Details)
	writeJSON(w, apiErr.StatusCode(), apiErr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[error] encode response: %v", err)
	}
}
