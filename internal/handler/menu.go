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

// MenuHandler handles menu item reference-data endpoints.
type MenuHandler struct {
	store catalog.Store
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(store catalog.Store) *MenuHandler {
	return &MenuHandler{store: store}
}

// RegisterRoutes registers menu item endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}

type createMenuItemRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Dietary      string          `json:"dietary"`
	FoodCategory string          `json:"food_category"`
}

// List returns all menu items.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListMenuItems(r.Context())
	if err != nil {
		writeServiceError(w, "list menu items", err)
		return
	}
	if items == nil {
		items = []catalog.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Get returns one menu item by id.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item ID")
		return
	}

	item, err := h.store.GetMenuItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, "get menu item", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create adds a new menu item.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !enum.IsValidDietary(req.Dietary) {
		writeError(w, http.StatusBadRequest, "invalid dietary")
		return
	}
	if !enum.IsValidFoodCategory(req.FoodCategory) {
		writeError(w, http.StatusBadRequest, "invalid food_category")
		return
	}
	if req.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "price must be non-negative")
		return
	}

	item, err := h.store.CreateMenuItem(r.Context(), catalog.MenuItem{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Dietary:      req.Dietary,
		FoodCategory: req.FoodCategory,
	})
	if err != nil {
		writeServiceError(w, "create menu item", err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Delete removes a menu item. Existing order snapshots are unaffected.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item ID")
		return
	}

	if err := h.store.DeleteMenuItem(r.Context(), id); err != nil {
		writeServiceError(w, "delete menu item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
