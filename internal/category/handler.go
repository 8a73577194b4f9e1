package category

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var validate = validator.New()

// Handler exposes category catalog and project-category routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func pathID(r *http.Request, key string) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[key])
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

/* ============================ Catalog endpoints ============================ */

// POST /categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := Category{Name: dto.Name}
	if err := h.Repo.CreateCategory(&c); err != nil {
		http.Error(w, "failed to create category", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListCategories()
	if err != nil {
		http.Error(w, "failed to list categories", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// PUT /categories/{id}
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindCategoryByID(id)
	if err != nil {
		http.Error(w, "category not found", http.StatusNotFound)
		return
	}

	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c.Name = dto.Name
	if err := h.Repo.UpdateCategory(c); err != nil {
		http.Error(w, "failed to update category", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// DELETE /categories/{id}
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteCategory(id); err != nil {
		if errors.Is(err, ErrInUse) {
			http.Error(w, "category is assigned to a project and cannot be deleted", http.StatusConflict)
			return
		}
		http.Error(w, "failed to delete category", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ========================= Project-category endpoints ======================== */

// POST /projects/{id}/categories
func (h *Handler) CreateProjectCategory(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid project ID", http.StatusBadRequest)
		return
	}

	var dto CreateProjectCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pc := ProjectCategory{
		ProjectID:              projectID,
		CategoryID:             dto.CategoryID,
		ActualCommissionRate:   dto.ActualCommissionRate,
		BrokerCommissionRate:   dto.BrokerCommissionRate,
		CommunicatedCommission: dto.CommunicatedCommission,
		IsEnabled:              true,
	}
	if err := h.Repo.CreateProjectCategory(&pc); err != nil {
		http.Error(w, "failed to attach category to project", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(pc)
}

// GET /projects/{id}/categories?enabled=true
func (h *Handler) ListProjectCategories(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid project ID", http.StatusBadRequest)
		return
	}

	enabledOnly := r.URL.Query().Get("enabled") == "true"
	list, err := h.Repo.ListByProject(projectID, enabledOnly)
	if err != nil {
		http.Error(w, "failed to list project categories", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /project-categories/{id}
func (h *Handler) GetProjectCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid project category ID", http.StatusBadRequest)
		return
	}
	pc, err := h.Repo.FindProjectCategoryByID(id)
	if err != nil {
		http.Error(w, "project category not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pc)
}

// PUT /project-categories/{id}
func (h *Handler) UpdateProjectCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid project category ID", http.StatusBadRequest)
		return
	}

	var dto UpdateProjectCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateProjectCategory(id, dto.updates()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "project category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update project category", http.StatusInternalServerError)
		return
	}

	pc, err := h.Repo.FindProjectCategoryByID(id)
	if err != nil {
		http.Error(w, "project category not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pc)
}

// PATCH /project-categories/{id}/enabled
func (h *Handler) SetEnabled(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid project category ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		IsEnabled bool `json:"isEnabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	if err := h.Repo.SetEnabled(id, payload.IsEnabled); err != nil {
		http.Error(w, "failed to update project category", http.StatusInternalServerError)
		return
	}

	pc, err := h.Repo.FindProjectCategoryByID(id)
	if err != nil {
		http.Error(w, "project category not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pc)
}

// DELETE /project-categories/{id}
func (h *Handler) DeleteProjectCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid project category ID", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteProjectCategory(id); err != nil {
		if errors.Is(err, ErrInUse) {
			http.Error(w, "project category is referenced and cannot be deleted", http.StatusConflict)
			return
		}
		http.Error(w, "failed to delete project category", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
