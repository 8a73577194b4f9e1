package deal

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/auth"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/category"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/commission"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/developer"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/project"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/rates"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/unittype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var validate = validator.New()

// Handler owns the deal creation flow: one resolution pass over the persisted
// hierarchy, then deal + commission created in a single transaction.
type Handler struct {
	DB          *gorm.DB
	Repo        Repository
	Commissions *commission.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Repo:        NewRepository(),
		Commissions: commission.NewRepository(db),
	}
}

// POST /deals
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateDealDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ProjectCategoryUnitTypeID != nil && dto.ProjectCategoryID == nil {
		http.Error(w, "a unit type requires its category", http.StatusBadRequest)
		return
	}

	// Ordinary brokers always book for themselves.
	brokerID, _ := r.Context().Value(auth.CtxUserID).(uint)
	isManager, _ := r.Context().Value(auth.CtxIsManager).(bool)
	if isManager && dto.BrokerID != 0 {
		brokerID = dto.BrokerID
	}
	if brokerID == 0 {
		http.Error(w, "missing broker identity", http.StatusUnauthorized)
		return
	}

	var proj project.Project
	if err := h.DB.First(&proj, dto.ProjectID).Error; err != nil {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	var dev developer.Developer
	if err := h.DB.First(&dev, proj.DeveloperID).Error; err != nil {
		http.Error(w, "developer not found", http.StatusNotFound)
		return
	}

	// Disabled nodes are not selectable for new deals; existing deals keep
	// their snapshots regardless.
	var categoryRates, unitTypeRates rates.RateFields
	if dto.ProjectCategoryID != nil {
		var pc category.ProjectCategory
		if err := h.DB.First(&pc, *dto.ProjectCategoryID).Error; err != nil {
			http.Error(w, "project category not found", http.StatusNotFound)
			return
		}
		if pc.ProjectID != proj.ID {
			http.Error(w, "category does not belong to the project", http.StatusBadRequest)
			return
		}
		if !pc.IsEnabled {
			http.Error(w, "category is disabled", http.StatusBadRequest)
			return
		}
		categoryRates = pc.Rates()

		if dto.ProjectCategoryUnitTypeID != nil {
			var ut unittype.ProjectCategoryUnitType
			if err := h.DB.First(&ut, *dto.ProjectCategoryUnitTypeID).Error; err != nil {
				http.Error(w, "unit type assignment not found", http.StatusNotFound)
				return
			}
			if ut.ProjectCategoryID != pc.ID {
				http.Error(w, "unit type does not belong to the category", http.StatusBadRequest)
				return
			}
			if !ut.IsEnabled {
				http.Error(w, "unit type is disabled", http.StatusBadRequest)
				return
			}
			unitTypeRates = ut.Rates()
		}
	}

	snap, err := BuildSnapshot(dto.SalePrice, dev.Rates(), proj.Rates(), categoryRates, unitTypeRates)
	if err != nil {
		http.Error(w, "invalid sale price or rate configuration", http.StatusBadRequest)
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "could not start transaction", http.StatusInternalServerError)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			http.Error(w, "internal failure", http.StatusInternalServerError)
		}
	}()

	d := Deal{
		Reference:                 uuid.NewString(),
		BrokerID:                  brokerID,
		DeveloperID:               dev.ID,
		ProjectID:                 proj.ID,
		ProjectCategoryID:         dto.ProjectCategoryID,
		ProjectCategoryUnitTypeID: dto.ProjectCategoryUnitTypeID,
		ClientName:                dto.ClientName,
		UnitNumber:                dto.UnitNumber,
		SalePrice:                 dto.SalePrice,
		Status:                    StatusPending,
	}
	if err := h.Repo.Create(tx, &d); err != nil {
		_ = tx.Rollback()
		http.Error(w, "failed to create deal", http.StatusInternalServerError)
		return
	}

	c := commission.Commission{
		DealID:           d.ID,
		BrokerID:         brokerID,
		SalePrice:        dto.SalePrice,
		Rate:             snap.Rates.Actual,
		Amount:           snap.Amount,
		BrokerRate:       snap.Rates.Broker,
		BrokerAmount:     snap.BrokerAmount,
		CommunicatedRate: snap.Rates.Communicated,
		Status:           commission.StatusPending,
	}
	if err := h.Commissions.Create(tx, &c); err != nil {
		_ = tx.Rollback()
		http.Error(w, "failed to create commission", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "failed to commit transaction", http.StatusInternalServerError)
		return
	}

	created, err := h.Repo.FindByID(h.DB, d.ID)
	if err != nil {
		http.Error(w, "failed to load created deal", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}

// GET /deals?brokerId=N&projectId=N
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Deal
		err  error
	)
	switch {
	case r.URL.Query().Get("brokerId") != "":
		id, convErr := strconv.Atoi(r.URL.Query().Get("brokerId"))
		if convErr != nil || id <= 0 {
			http.Error(w, "invalid broker ID", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.ListByBroker(h.DB, uint(id))
	case r.URL.Query().Get("projectId") != "":
		id, convErr := strconv.Atoi(r.URL.Query().Get("projectId"))
		if convErr != nil || id <= 0 {
			http.Error(w, "invalid project ID", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.ListByProject(h.DB, uint(id))
	default:
		list, err = h.Repo.ListAll(h.DB)
	}
	if err != nil {
		http.Error(w, "failed to list deals", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /deals/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid deal ID", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "deal not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// PATCH /deals/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid deal ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if !ValidStatus(payload.Status) {
		http.Error(w, "unknown deal status", http.StatusBadRequest)
		return
	}

	d, err := h.Repo.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "deal not found", http.StatusNotFound)
		return
	}
	if d.Status == StatusCompleted || d.Status == StatusCancelled {
		http.Error(w, "deal status can no longer change", http.StatusConflict)
		return
	}

	// The deal row and the linked commission change together or not at all.
	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "could not start transaction", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.UpdateStatus(tx, d.ID, payload.Status); err != nil {
		_ = tx.Rollback()
		http.Error(w, "failed to update deal status", http.StatusInternalServerError)
		return
	}

	// Cancelling a deal also cancels its pending commission. A commission
	// already paid keeps its books; the lifecycle rejects that transition
	// and the deal cancellation stands on its own.
	if payload.Status == StatusCancelled && d.Commission != nil {
		_, err := h.Commissions.TransitionStatusTx(tx, d.Commission.ID, commission.StatusCancelled, "deal cancelled")
		if err != nil && !errors.Is(err, commission.ErrInvalidTransition) {
			_ = tx.Rollback()
			http.Error(w, "failed to cancel linked commission", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "failed to commit transaction", http.StatusInternalServerError)
		return
	}

	updated, err := h.Repo.FindByID(h.DB, d.ID)
	if err != nil {
		http.Error(w, "deal not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(updated)
}

// DELETE /deals/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid deal ID", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "deal not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(h.DB, d.ID); err != nil {
		http.Error(w, "failed to delete deal", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
