package override

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// Handler exposes the administrative bulk-override endpoint.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /rates/override
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var dto ApplyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Repo.Apply(dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFields), errors.Is(err, ErrInvalidCascade):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "scope node not found", http.StatusNotFound)
		default:
			http.Error(w, "failed to apply rate override", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{"updated": updated})
}
