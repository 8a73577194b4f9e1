package broker

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/auth"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/commission"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var validate = validator.New()

// request DTOs
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createBrokerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=50"`
	Photo     string `json:"photo"`
	Password  string `json:"password" validate:"omitempty,min=8"`
	IsManager bool   `json:"isManager"`
}

// Handler wraps broker account routes.
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Commissions *commission.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Commissions: commission.NewRepository(db),
	}
}

// Login issues a JWT for valid credentials.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.Repository.FindByEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if !utils.CheckPassword(b.Password, req.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(b.ID, b.IsManager)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Create registers a broker account. When no password is given a temporary
// one is generated and returned once; the account is flagged for reset.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBrokerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	password := req.Password
	temporary := false
	if password == "" {
		var err error
		password, err = utils.TemporaryPassword()
		if err != nil {
			http.Error(w, "failed to generate password", http.StatusInternalServerError)
			return
		}
		temporary = true
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		http.Error(w, "failed to process password", http.StatusInternalServerError)
		return
	}

	b := Broker{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		Photo:             req.Photo,
		Password:          hash,
		MustResetPassword: temporary,
		IsManager:         req.IsManager,
	}
	if err := h.Repository.Save(h.DB, &b); err != nil {
		http.Error(w, "failed to save broker", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{"broker": b}
	if temporary {
		resp["temporaryPassword"] = password
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)
}

// List returns all brokers for managers, or just the caller's own record.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	isManager, _ := r.Context().Value(auth.CtxIsManager).(bool)
	if !isManager {
		userID, _ := r.Context().Value(auth.CtxUserID).(uint)
		b, err := h.Repository.FindByID(h.DB, userID)
		if err != nil {
			http.Error(w, "broker not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Broker{*b})
		return
	}

	list, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "failed to list brokers", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get returns one broker with deals and commissions preloaded.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid broker ID", http.StatusBadRequest)
		return
	}
	b, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "broker not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(b)
}

// Summary returns the dashboard aggregation for one broker.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid broker ID", http.StatusBadRequest)
		return
	}

	b, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "broker not found", http.StatusNotFound)
		return
	}

	commissions, err := h.Commissions.ListByBroker(b.ID)
	if err != nil {
		http.Error(w, "failed to load commissions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(BuildSummary(*b, b.Deals, commissions))
}

// Update edits profile fields.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid broker ID", http.StatusBadRequest)
		return
	}

	b, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "broker not found", http.StatusNotFound)
		return
	}

	var req createBrokerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b.FirstName = req.FirstName
	b.LastName = req.LastName
	b.Email = req.Email
	b.Phone = req.Phone
	b.Photo = req.Photo

	if err := h.Repository.Save(h.DB, b); err != nil {
		http.Error(w, "failed to update broker", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(b)
}

// Delete removes a broker without deals.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid broker ID", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		if errors.Is(err, ErrInUse) {
			http.Error(w, "broker has deals and cannot be deleted", http.StatusConflict)
			return
		}
		http.Error(w, "failed to delete broker", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
