package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/sevatrust/donation-engine/internal/domain"
	"github.com/sevatrust/donation-engine/internal/service"
	"github.com/sevatrust/donation-engine/pkg/response"
)

type ProjectHandler struct {
	service   *service.ProjectService
	validator *validator.Validate
}

func NewProjectHandler(service *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Create registers a fundraising project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	project, err := h.service.CreateProject(r.Context(), &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, project)
}

// List returns all projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListProjects(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, projects)
}

// Get returns a project with its raised amount and donor count.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetProject(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, view)
}
