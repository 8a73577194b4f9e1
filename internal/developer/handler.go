package developer

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

// Handler exposes developer CRUD routes.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /developers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateDeveloperDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d := Developer{
		Name:                   dto.Name,
		ContactEmail:           dto.ContactEmail,
		Phone:                  dto.Phone,
		ActualCommissionRate:   dto.ActualCommissionRate,
		BrokerCommissionRate:   dto.BrokerCommissionRate,
		CommunicatedCommission: dto.CommunicatedCommission,
	}
	if err := h.Repository.Create(h.DB, &d); err != nil {
		http.Error(w, "failed to create developer", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

// GET /developers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "failed to list developers", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /developers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid developer ID", http.StatusBadRequest)
		return
	}
	d, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "developer not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// PUT /developers/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid developer ID", http.StatusBadRequest)
		return
	}

	var dto UpdateDeveloperDTO
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
			http.Error(w, "developer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update developer", http.StatusInternalServerError)
		return
	}

	d, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "developer not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// DELETE /developers/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid developer ID", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		if errors.Is(err, ErrInUse) {
			http.Error(w, "developer has projects and cannot be deleted", http.StatusConflict)
			return
		}
		http.Error(w, "failed to delete developer", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
