package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/document"
	"github.com/jms-catering/api/internal/order"
	"github.com/jms-catering/api/internal/service"
)

// OrderHandler handles order intake, quoting, lifecycle and document
// endpoints.
type OrderHandler struct {
	store     order.Repository
	catalog   catalog.Store
	intake    *service.IntakeService
	quote     *service.QuoteService
	lifecycle *service.LifecycleService
	renderer  *document.PDFRenderer
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(
	store order.Repository,
	cat catalog.Store,
	intake *service.IntakeService,
	quote *service.QuoteService,
	lifecycle *service.LifecycleService,
	renderer *document.PDFRenderer,
) *OrderHandler {
	return &OrderHandler{
		store:     store,
		catalog:   cat,
		intake:    intake,
		quote:     quote,
		lifecycle: lifecycle,
		renderer:  renderer,
	}
}

// RegisterRoutes registers order endpoints on the given Chi router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/ala-carte", h.PlaceAlaCarte)
	r.Post("/preset", h.PlacePreset)
	r.Get("/{id}", h.Get)
	r.Put("/{id}/quote", h.ApplyQuote)
	r.Post("/{id}/costs", h.AddCost)
	r.Delete("/{id}/costs/{costID}", h.RemoveCost)
	r.Post("/{id}/accept", h.Accept)
	r.Post("/{id}/complete", h.Complete)
	r.Patch("/{id}/payment-status", h.SetPaymentStatus)
	r.Get("/{id}/document", h.Document)
}

// --- Request / Response types ---

type placeOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	EventDate     string `json:"event_date"` // "2006-01-02"
	EventTime     string `json:"event_time"`
	Address       string `json:"address"`
	MealType      string `json:"meal_type"`
	GuestCount    int32  `json:"guest_count"`

	// à-la-carte orders
	MenuItemIDs []uuid.UUID `json:"menu_item_ids,omitempty"`

	// preset orders
	PresetID uuid.UUID         `json:"preset_id,omitempty"`
	Choices  map[string]string `json:"choices,omitempty"`
}

func (req placeOrderRequest) common() service.PlaceOrderRequest {
	return service.PlaceOrderRequest{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		EventDate:     req.EventDate,
		EventTime:     req.EventTime,
		Address:       req.Address,
		MealType:      req.MealType,
		GuestCount:    req.GuestCount,
	}
}

type costRequest struct {
	Type        string          `json:"type"`
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int32           `json:"quantity"`
	Description string          `json:"description"`
}

func (req costRequest) input() service.AdditionalCostInput {
	return service.AdditionalCostInput{
		Type:        req.Type,
		Label:       req.Label,
		Amount:      req.Amount,
		Quantity:    req.Quantity,
		Description: req.Description,
	}
}

type applyQuoteRequest struct {
	PerHeadAmount decimal.Decimal `json:"per_head_amount"`
	GuestCount    int32           `json:"guest_count"`
	Costs         []costRequest   `json:"costs"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

type orderResponse struct {
	ID                 uuid.UUID              `json:"id"`
	CustomerName       string                 `json:"customer_name"`
	CustomerPhone      string                 `json:"customer_phone"`
	EventDate          string                 `json:"event_date"`
	EventTime          string                 `json:"event_time,omitempty"`
	Address            string                 `json:"address,omitempty"`
	MealType           string                 `json:"meal_type"`
	Items              []order.OrderItem      `json:"items"`
	Status             string                 `json:"status"`
	CreatedAt          time.Time              `json:"created_at"`
	PerHeadAmount      decimal.Decimal        `json:"per_head_amount"`
	GuestCount         int32                  `json:"guest_count"`
	AdditionalCosts    []order.AdditionalCost `json:"additional_costs"`
	TotalEstimatedCost decimal.Decimal        `json:"total_estimated_cost"`
	CompletedAt        *time.Time             `json:"completed_at,omitempty"`
	BillNumber         string                 `json:"bill_number,omitempty"`
	PaymentStatus      string                 `json:"payment_status,omitempty"`
}

func toOrderResponse(o order.Order) orderResponse {
	return orderResponse{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		EventDate:          o.EventDate.Format("2006-01-02"),
		EventTime:          o.EventTime,
		Address:            o.Address,
		MealType:           o.MealType,
		Items:              o.Items,
		Status:             o.Status,
		CreatedAt:          o.CreatedAt,
		PerHeadAmount:      o.PerHeadAmount,
		GuestCount:         o.GuestCount,
		AdditionalCosts:    o.AdditionalCosts,
		TotalEstimatedCost: o.TotalEstimatedCost,
		CompletedAt:        o.CompletedAt,
		BillNumber:         o.BillNumber,
		PaymentStatus:      o.PaymentStatus,
	}
}

// --- Handlers ---

// List returns all orders, newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.List(r.Context())
	if err != nil {
		writeServiceError(w, "list orders", err)
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns one order by id.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	o, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, "get order", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// PlaceAlaCarte creates a PENDING order from selected menu items.
func (h *OrderHandler) PlaceAlaCarte(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.intake.PlaceAlaCarteOrder(r.Context(), req.common(), req.MenuItemIDs)
	if err != nil {
		writeServiceError(w, "place ala-carte order", err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(o))
}

// PlacePreset creates a PENDING order from a preset package.
func (h *OrderHandler) PlacePreset(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PresetID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "preset_id is required")
		return
	}

	o, err := h.intake.PlacePresetOrder(r.Context(), req.common(), req.PresetID, req.Choices)
	if err != nil {
		writeServiceError(w, "place preset order", err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(o))
}

// ApplyQuote replaces the order's quote fields and recomputes the total.
func (h *OrderHandler) ApplyQuote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req applyQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	costs := make([]service.AdditionalCostInput, len(req.Costs))
	for i, c := range req.Costs {
		costs[i] = c.input()
	}

	o, err := h.quote.ApplyQuote(r.Context(), id, req.PerHeadAmount, req.GuestCount, costs)
	if err != nil {
		writeServiceError(w, "apply quote", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// AddCost appends one additional cost to the order.
func (h *OrderHandler) AddCost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req costRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.quote.AddCost(r.Context(), id, req.input())
	if err != nil {
		writeServiceError(w, "add cost", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// RemoveCost deletes one additional cost from the order.
func (h *OrderHandler) RemoveCost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}
	costID, err := uuid.Parse(chi.URLParam(r, "costID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cost ID")
		return
	}

	o, err := h.quote.RemoveCost(r.Context(), id, costID)
	if err != nil {
		writeServiceError(w, "remove cost", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// Accept confirms a PENDING order.
func (h *OrderHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	o, err := h.lifecycle.Accept(r.Context(), id)
	if err != nil {
		writeServiceError(w, "accept order", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// Complete finalizes a CONFIRMED order, assigning its bill number.
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	o, err := h.lifecycle.Complete(r.Context(), id)
	if err != nil {
		writeServiceError(w, "complete order", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// SetPaymentStatus records a payment status on a completed order.
func (h *OrderHandler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req paymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.lifecycle.SetPaymentStatus(r.Context(), id, req.PaymentStatus)
	if err != nil {
		writeServiceError(w, "set payment status", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// Document renders the order's quote or bill as a PDF download. Completed
// orders get a bill; everything else gets a quote.
func (h *OrderHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	o, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, "get order for document", err)
		return
	}

	presets, err := h.catalog.ListPresetMenus(r.Context())
	if err != nil {
		writeServiceError(w, "list presets for document", err)
		return
	}

	dt := document.DocTypeFor(o)
	pdf, err := h.renderer.Generate(o, catalog.IndexByName(presets), dt)
	if err != nil {
		writeServiceError(w, "render document", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.FileName(o, dt)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
