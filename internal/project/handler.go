package project

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

// Handler exposes project CRUD routes.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /projects
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := Project{
		DeveloperID:            dto.DeveloperID,
		Name:                   dto.Name,
		Location:               dto.Location,
		Description:            dto.Description,
		ActualCommissionRate:   dto.ActualCommissionRate,
		BrokerCommissionRate:   dto.BrokerCommissionRate,
		CommunicatedCommission: dto.CommunicatedCommission,
	}
	if err := h.Repository.Create(h.DB, &p); err != nil {
		http.Error(w, "failed to create project", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /projects?developerId=N
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Project
		err  error
	)
	if dev := r.URL.Query().Get("developerId"); dev != "" {
		id, convErr := strconv.Atoi(dev)
		if convErr != nil || id <= 0 {
			http.Error(w, "invalid developer ID", http.StatusBadRequest)
			return
		}
		list, err = h.Repository.ListByDeveloper(h.DB, uint(id))
	} else {
		list, err = h.Repository.ListAll(h.DB)
	}
	if err != nil {
		http.Error(w, "failed to list projects", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /projects/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid project ID", http.StatusBadRequest)
		return
	}
	p, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /projects/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid project ID", http.StatusBadRequest)
		return
	}

	var dto UpdateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.Update(h.DB, uint(id), dto.updates()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update project", http.StatusInternalServerError)
		return
	}

	p, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// DELETE /projects/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid project ID", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		if errors.Is(err, ErrInUse) {
			http.Error(w, "project is referenced and cannot be deleted", http.StatusConflict)
			return
		}
		http.Error(w, "failed to delete project", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
