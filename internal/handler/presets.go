package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/enum"
)

// PresetHandler handles preset menu reference-data endpoints.
type PresetHandler struct {
	store catalog.Store
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(store catalog.Store) *PresetHandler {
	return &PresetHandler{store: store}
}

// RegisterRoutes registers preset menu endpoints on the given Chi router.
func (h *PresetHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}

type createPresetRequest struct {
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	PricePerHead decimal.Decimal       `json:"price_per_head"`
	MealCategory string                `json:"meal_category"`
	FixedItems   []string              `json:"fixed_items"`
	OptionGroups []catalog.OptionGroup `json:"option_groups"`
}

// List returns all preset menus.
func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	presets, err := h.store.ListPresetMenus(r.Context())
	if err != nil {
		writeServiceError(w, "list preset menus", err)
		return
	}
	if presets == nil {
		presets = []catalog.PresetMenu{}
	}
	writeJSON(w, http.StatusOK, presets)
}

// Get returns one preset menu by id.
func (h *PresetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid preset ID")
		return
	}

	p, err := h.store.GetPresetMenu(r.Context(), id)
	if err != nil {
		writeServiceError(w, "get preset menu", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create adds a new preset menu.
func (h *PresetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !enum.IsValidMealType(req.MealCategory) {
		writeError(w, http.StatusBadRequest, "invalid meal_category")
		return
	}
	if !req.PricePerHead.IsPositive() {
		writeError(w, http.StatusBadRequest, "price_per_head must be > 0")
		return
	}
	for _, g := range req.OptionGroups {
		if g.Label == "" || len(g.Choices) == 0 {
			writeError(w, http.StatusBadRequest, "option groups need a label and at least one choice")
			return
		}
	}

	p, err := h.store.CreatePresetMenu(r.Context(), catalog.PresetMenu{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		PricePerHead: req.PricePerHead,
		MealCategory: req.MealCategory,
		FixedItems:   req.FixedItems,
		OptionGroups: req.OptionGroups,
	})
	if err != nil {
		writeServiceError(w, "create preset menu", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Delete removes a preset menu. Existing order snapshots are unaffected.
func (h *PresetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid preset ID")
		return
	}

	if err := h.store.DeletePresetMenu(r.Context(), id); err != nil {
		writeServiceError(w, "delete preset menu", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
