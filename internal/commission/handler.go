package commission

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/auth"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/notification"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/rates"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler exposes commission review and reporting routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// writeEngineError maps the engine's error taxonomy onto HTTP statuses. Every
// error is surfaced verbatim so the UI can show it.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "commission not found", http.StatusNotFound)
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, rates.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrConcurrentModification):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// GET /commissions?status=PENDING&brokerId=N
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !ValidStatus(status) {
		http.Error(w, "unknown status filter", http.StatusBadRequest)
		return
	}

	var brokerID uint
	if v := r.URL.Query().Get("brokerId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			http.Error(w, "invalid broker ID", http.StatusBadRequest)
			return
		}
		brokerID = uint(id)
	}

	list, err := h.Repo.List(status, brokerID)
	if err != nil {
		http.Error(w, "failed to list commissions", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /commissions/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid commission ID", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "commission not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PATCH /commissions/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid commission ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status          string `json:"status"`
		RejectionReason string `json:"rejectionReason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		http.Error(w, "the 'status' field is required", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.TransitionStatus(uint(id), payload.Status, payload.RejectionReason)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if c.Status == StatusApproved || c.Status == StatusPaid {
		notification.SendCommissionAlert(c.ID, c.Status, c.Amount)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PATCH /commissions/{id}/rates is the explicit manager override of the
// frozen rate snapshot; amounts are recomputed from the stored sale price.
func (h *Handler) OverrideRates(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid commission ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Rate       *float64 `json:"rate"`
		BrokerRate *float64 `json:"brokerRate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	editorID, _ := r.Context().Value(auth.CtxUserID).(uint)
	c, err := h.Repo.OverrideRates(uint(id), payload.Rate, payload.BrokerRate, editorID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// GET /commissions/export?status=PAID
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !ValidStatus(status) {
		http.Error(w, "unknown status filter", http.StatusBadRequest)
		return
	}

	rows, err := h.Repo.ExportRows(status)
	if err != nil {
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="commissions.csv"`)
	if err := WriteCSV(w, rows); err != nil {
		http.Error(w, "failed to write export", http.StatusInternalServerError)
		return
	}
}
