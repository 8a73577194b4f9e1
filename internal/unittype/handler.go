package unittype

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

// Handler exposes unit-type catalog and assignment routes.
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

// POST /unit-types
func (h *Handler) CreateType(w http.ResponseWriter, r *http.Request) {
	var dto CreateTypeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u := UnitType{Name: dto.Name}
	if err := h.Repo.CreateType(&u); err != nil {
		http.Error(w, "failed to create unit type", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}

// GET /unit-types
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListTypes()
	if err != nil {
		http.Error(w, "failed to list unit types", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// PUT /unit-types/{id}
func (h *Handler) UpdateType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid unit type ID", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.FindTypeByID(id)
	if err != nil {
		http.Error(w, "unit type not found", http.StatusNotFound)
		return
	}

	var dto CreateTypeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u.Name = dto.Name
	if err := h.Repo.UpdateType(u); err != nil {
		http.Error(w, "failed to update unit type", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}

// DELETE /unit-types/{id}
func (h *Handler) DeleteType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid unit type ID", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteType(id); err != nil {
		if errors.Is(err, ErrInUse) {
			http.Error(w, "unit type is assigned to a project and cannot be deleted", http.StatusConflict)
			return
		}
		http.Error(w, "failed to delete unit type", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* =========================== Assignment endpoints ========================== */

// POST /project-categories/{id}/unit-types
func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	pcID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid project category ID", http.StatusBadRequest)
		return
	}

	var dto CreateAssignmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a := ProjectCategoryUnitType{
		ProjectCategoryID:      pcID,
		UnitTypeID:             dto.UnitTypeID,
		ActualCommissionRate:   dto.ActualCommissionRate,
		BrokerCommissionRate:   dto.BrokerCommissionRate,
		CommunicatedCommission: dto.CommunicatedCommission,
		Price:                  dto.Price,
		IsEnabled:              true,
	}
	if err := h.Repo.CreateAssignment(&a); err != nil {
		http.Error(w, "failed to assign unit type", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /project-categories/{id}/unit-types?enabled=true
func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	pcID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid project category ID", http.StatusBadRequest)
		return
	}

	enabledOnly := r.URL.Query().Get("enabled") == "true"
	list, err := h.Repo.ListByProjectCategory(pcID, enabledOnly)
	if err != nil {
		http.Error(w, "failed to list unit type assignments", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// PUT /unit-type-assignments/{id}
func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid assignment ID", http.StatusBadRequest)
		return
	}

	var dto UpdateAssignmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateAssignment(id, dto.updates()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "assignment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update assignment", http.StatusInternalServerError)
		return
	}

	a, err := h.Repo.FindAssignmentByID(id)
	if err != nil {
		http.Error(w, "assignment not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// PATCH /unit-type-assignments/{id}/enabled
func (h *Handler) SetEnabled(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid assignment ID", http.StatusBadRequest)
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
		http.Error(w, "failed to update assignment", http.StatusInternalServerError)
		return
	}

	a, err := h.Repo.FindAssignmentByID(id)
	if err != nil {
		http.Error(w, "assignment not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// DELETE /unit-type-assignments/{id}
func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid assignment ID", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteAssignment(id); err != nil {
		if errors.Is(err, ErrInUse) {
			http.Error(w, "unit type assignment is referenced by deals", http.StatusConflict)
			return
		}
		http.Error(w, "failed to delete assignment", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
