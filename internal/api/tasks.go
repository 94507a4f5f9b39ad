package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"task-manager/internal/validation"
)

// ListTasks handles GET /api/tasks.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) error {
	tasks, err := h.tasks.ListTasks(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": newTaskViews(tasks)})
	return nil
}

// CreateTask handles POST /api/tasks.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) error {
	body, err := validation.ParseRequestBody(r.Body)
	if err != nil {
		return err
	}
	input, err := validation.ValidateCreateTaskInput(body)
	if err != nil {
		return err
	}

	task, err := h.tasks.CreateTask(r.Context(), input)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, map[string]any{"task": newTaskView(*task)})
	return nil
}

// GetTask handles GET /api/tasks/{id}.
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) error {
	taskID, err := validation.ValidateTaskID(mux.Vars(r)["id"])
	if err != nil {
		return err
	}

	task, err := h.tasks.FindTaskByID(r.Context(), taskID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"task": newTaskView(*task)})
	return nil
}

// UpdateTask handles PUT /api/tasks/{id}.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) error {
	taskID, err := validation.ValidateTaskID(mux.Vars(r)["id"])
	if err != nil {
		return err
	}
	body, err := validation.ParseRequestBody(r.Body)
	if err != nil {
		return err
	}
	input, err := validation.ValidateUpdateTaskInput(body)
	if err != nil {
		return err
	}

	task, err := h.tasks.UpdateTask(r.Context(), taskID, input)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"task": newTaskView(*task)})
	return nil
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) error {
	taskID, err := validation.ValidateTaskID(mux.Vars(r)["id"])
	if err != nil {
		return err
	}

	if err := h.tasks.DeleteTask(r.Context(), taskID); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
