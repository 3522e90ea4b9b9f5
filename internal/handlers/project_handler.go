package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type ProjectHandler struct {
	projects services.ProjectService
}

func NewProjectHandler(projects services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	projects, err := h.projects.List(ctx)
	if err != nil {
		log.Printf("[ListProjects] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to list projects"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(projects))
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	project, err := h.projects.Create(ctx, &req)
	if err != nil {
		log.Printf("[CreateProject] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to create project"))
		return
	}
	writeJSON(w, http.StatusCreated, models.NewMessageResponse("Project created", project))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	var req models.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	project, err := h.projects.Update(ctx, projectID, &req)
	if err != nil {
		if err == services.ErrProjectNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Project not found"))
			return
		}
		log.Printf("[UpdateProject] id=%s error=%v", projectID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to update project"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Project updated", project))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := h.projects.Delete(ctx, projectID); err != nil {
		if err == services.ErrProjectNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Project not found"))
			return
		}
		log.Printf("[DeleteProject] id=%s error=%v", projectID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to delete project"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Project deleted", nil))
}
