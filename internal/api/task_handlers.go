package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/semestra/internal/domain"
)

func (a *API) handleTasksList(w http.ResponseWriter, r *http.Request) {
	tasks, err := a.tasks.List(r.Context(), userID(r))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	out := make([]taskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskDTO(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": out})
}

func (a *API) handleTasksCreate(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	task := &domain.Task{
		UserID:      userID(r),
		CourseID:    req.CourseID,
		Category:    domain.TaskCategory(req.Category),
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Priority:    domain.TaskPriority(req.Priority),
	}
	if err := a.tasks.Create(r.Context(), task); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskDTO(task))
}

func (a *API) handleTasksUpdate(w http.ResponseWriter, r *http.Request) {
	task, err := a.tasks.GetByID(r.Context(), userID(r), chi.URLParam(r, "taskID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	var req taskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if !req.Deadline.IsZero() {
		task.Deadline = req.Deadline
	}
	if req.Category != "" {
		task.Category = domain.TaskCategory(req.Category)
	}
	if req.Priority != "" {
		task.Priority = domain.TaskPriority(req.Priority)
	}
	if req.Status != "" {
		task.Status = domain.TaskStatus(req.Status)
		if task.Status != domain.TaskPending {
			task.ClearPlan()
		}
	}
	if req.CourseID != nil {
		task.CourseID = req.CourseID
	}

	if err := a.tasks.Update(r.Context(), task); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

func (a *API) handleTasksDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.tasks.Delete(r.Context(), userID(r), chi.URLParam(r, "taskID")); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type completeRequest struct {
	ActualDurationMins int    `json:"actual_duration_mins"`
	DrainIntensity     int    `json:"drain_intensity"`
	Note               string `json:"note"`
}

func (a *API) handleTasksComplete(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	taskID := chi.URLParam(r, "taskID")

	fb := &domain.Feedback{}
	if r.ContentLength > 0 {
		var req completeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		fb.ActualDurationMins = req.ActualDurationMins
		fb.DrainIntensity = req.DrainIntensity
		fb.Note = req.Note
	}

	if err := a.tasks.Complete(r.Context(), uid, taskID, fb); err != nil {
		a.writeServiceError(w, err)
		return
	}
	task, err := a.tasks.GetByID(r.Context(), uid, taskID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskDTO(task))
}
