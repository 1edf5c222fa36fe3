package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/document"
	"github.com/jms-catering/api/internal/enum"
	"github.com/jms-catering/api/internal/handler"
	"github.com/jms-catering/api/internal/repository"
	"github.com/jms-catering/api/internal/service"
)

// --- Test fixture ---

type fixture struct {
	router *chi.Mux
	orders *repository.MemoryOrders
	cat    *repository.MemoryCatalog
}

func setup(t *testing.T) *fixture {
	t.Helper()

	orders := repository.NewMemoryOrders()
	cat := repository.NewMemoryCatalog()

	intake := service.NewIntakeService(orders, cat)
	quote := service.NewQuoteService(orders)
	lifecycle := service.NewLifecycleService(orders, service.CountBillSequence{Store: orders})
	insights := service.NewInsightsService(orders)
	renderer := document.NewPDFRenderer(document.DefaultBusinessInfo(), document.Asset{})

	r := chi.NewRouter()
	orderHandler := handler.NewOrderHandler(orders, cat, intake, quote, lifecycle, renderer)
	r.Route("/orders", orderHandler.RegisterRoutes)
	r.Route("/menu-items", handler.NewMenuHandler(cat).RegisterRoutes)
	r.Route("/preset-menus", handler.NewPresetHandler(cat).RegisterRoutes)
	r.Route("/reports", handler.NewReportsHandler(insights).RegisterRoutes)

	return &fixture{router: r, orders: orders, cat: cat}
}

func (f *fixture) seedPreset(t *testing.T) catalog.PresetMenu {
	t.Helper()
	p := catalog.PresetMenu{
		ID:           uuid.New(),
		Name:         "Wedding Feast",
		PricePerHead: decimal.NewFromInt(350),
		MealCategory: enum.MealTypeLunch,
		FixedItems:   []string{"Sambar", "Rasam", "Payasam"},
		OptionGroups: []catalog.OptionGroup{
			{Label: "Sweet", Choices: []string{"Gulab Jamun", "Kesari"}},
		},
	}
	if _, err := f.cat.CreatePresetMenu(context.Background(), p); err != nil {
		t.Fatalf("seed preset: %v", err)
	}
	return p
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func placePresetOrder(t *testing.T, f *fixture) string {
	t.Helper()
	p := f.seedPreset(t)
	rec := f.do(t, http.MethodPost, "/orders/preset", map[string]interface{}{
		"customer_name":  "Anand",
		"customer_phone": "9876543210",
		"event_date":     "2030-02-14",
		"event_time":     "12:30",
		"address":        "Chennai",
		"meal_type":      enum.MealTypeLunch,
		"guest_count":    100,
		"preset_id":      p.ID.String(),
		"choices":        map[string]string{"Sweet": "Kesari"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("place preset order: status %d, body %s", rec.Code, rec.Body.String())
	}
	return decodeOrder(t, rec)["id"].(string)
}

// --- Intake ---

func TestPlacePresetOrder(t *testing.T) {
	f := setup(t)
	p := f.seedPreset(t)

	rec := f.do(t, http.MethodPost, "/orders/preset", map[string]interface{}{
		"customer_name":  "Anand",
		"customer_phone": "9876543210",
		"event_date":     "2030-02-14",
		"meal_type":      enum.MealTypeLunch,
		"guest_count":    100,
		"preset_id":      p.ID.String(),
		"choices":        map[string]string{"Sweet": "Kesari"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeOrder(t, rec)
	if resp["status"].(string) != enum.OrderStatusPending {
		t.Fatalf("status: got %v, want PENDING", resp["status"])
	}
	if resp["total_estimated_cost"].(string) != "35000" {
		t.Fatalf("pre-total: got %v, want 35000", resp["total_estimated_cost"])
	}
}

func TestPlacePresetOrder_MissingChoice(t *testing.T) {
	f := setup(t)
	p := f.seedPreset(t)

	rec := f.do(t, http.MethodPost, "/orders/preset", map[string]interface{}{
		"customer_name":  "Anand",
		"customer_phone": "9876543210",
		"event_date":     "2030-02-14",
		"meal_type":      enum.MealTypeLunch,
		"guest_count":    100,
		"preset_id":      p.ID.String(),
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestPlaceAlaCarteOrder(t *testing.T) {
	f := setup(t)
	item := catalog.MenuItem{
		ID:           uuid.New(),
		Name:         "Gulab Jamun",
		Price:        decimal.NewFromInt(50),
		Dietary:      enum.DietaryVeg,
		FoodCategory: enum.FoodCategorySweet,
	}
	f.cat.CreateMenuItem(context.Background(), item)

	rec := f.do(t, http.MethodPost, "/orders/ala-carte", map[string]interface{}{
		"customer_name":  "Priya",
		"customer_phone": "9876543211",
		"event_date":     "2030-03-01",
		"meal_type":      enum.MealTypeDinner,
		"guest_count":    50,
		"menu_item_ids":  []string{item.ID.String()},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeOrder(t, rec)
	if resp["total_estimated_cost"].(string) != "0" {
		t.Fatalf("ala-carte total must start at 0, got %v", resp["total_estimated_cost"])
	}
}

func TestPlaceOrder_PastDateRejected(t *testing.T) {
	f := setup(t)
	p := f.seedPreset(t)

	rec := f.do(t, http.MethodPost, "/orders/preset", map[string]interface{}{
		"customer_name":  "Anand",
		"customer_phone": "9876543210",
		"event_date":     "2020-01-01",
		"meal_type":      enum.MealTypeLunch,
		"guest_count":    100,
		"preset_id":      p.ID.String(),
		"choices":        map[string]string{"Sweet": "Kesari"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

// --- Quote ---

func TestApplyQuote(t *testing.T) {
	f := setup(t)
	id := placePresetOrder(t, f)

	rec := f.do(t, http.MethodPut, "/orders/"+id+"/quote", map[string]interface{}{
		"per_head_amount": "300",
		"guest_count":     100,
		"costs": []map[string]interface{}{
			{"type": enum.CostTypeTransportation, "amount": "2000", "quantity": 1},
			{"type": enum.CostTypeServiceStaff, "amount": "500", "quantity": 2},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeOrder(t, rec)
	if resp["total_estimated_cost"].(string) != "33000" {
		t.Fatalf("total: got %v, want 33000", resp["total_estimated_cost"])
	}
}

func TestApplyQuote_InvalidCostRejected(t *testing.T) {
	f := setup(t)
	id := placePresetOrder(t, f)

	rec := f.do(t, http.MethodPut, "/orders/"+id+"/quote", map[string]interface{}{
		"per_head_amount": "300",
		"guest_count":     100,
		"costs": []map[string]interface{}{
			{"type": enum.CostTypeOther, "amount": "2000", "quantity": 1},
		},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("custom cost without label: got %d, want 400", rec.Code)
	}
}

func TestAddAndRemoveCost(t *testing.T) {
	f := setup(t)
	id := placePresetOrder(t, f)

	rec := f.do(t, http.MethodPost, "/orders/"+id+"/costs", map[string]interface{}{
		"type":     enum.CostTypeDecoration,
		"amount":   "3000",
		"quantity": 1,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add cost: status %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decodeOrder(t, rec)
	if resp["total_estimated_cost"].(string) != "38000" {
		t.Fatalf("total after add: got %v, want 38000", resp["total_estimated_cost"])
	}

	costs := resp["additional_costs"].([]interface{})
	costID := costs[0].(map[string]interface{})["id"].(string)

	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/orders/%s/costs/%s", id, costID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove cost: status %d", rec.Code)
	}
	resp = decodeOrder(t, rec)
	if resp["total_estimated_cost"].(string) != "35000" {
		t.Fatalf("total after remove: got %v, want 35000", resp["total_estimated_cost"])
	}
}

func TestRemoveCost_UnknownID(t *testing.T) {
	f := setup(t)
	id := placePresetOrder(t, f)

	rec := f.do(t, http.MethodDelete, fmt.Sprintf("/orders/%s/costs/%s", id, uuid.NewString()), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}

// --- Lifecycle ---

func TestLifecycleFlow(t *testing.T) {
	f := setup(t)
	id := placePresetOrder(t, f)

	rec := f.do(t, http.MethodPost, "/orders/"+id+"/accept", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("accept: status %d, body %s", rec.Code, rec.Body.String())
	}
	if resp := decodeOrder(t, rec); resp["status"].(string) != enum.OrderStatusConfirmed {
		t.Fatalf("status after accept: got %v", resp["status"])
	}

	rec = f.do(t, http.MethodPost, "/orders/"+id+"/complete", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete: status %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decodeOrder(t, rec)
	if resp["status"].(string) != enum.OrderStatusCompleted {
		t.Fatalf("status after complete: got %v", resp["status"])
	}
	bill := resp["bill_number"].(string)
	if !strings.HasPrefix(bill, "JMS-") || !strings.HasSuffix(bill, "-1") {
		t.Fatalf("bill number: got %q", bill)
	}
	if resp["payment_status"].(string) != enum.PaymentStatusPending {
		t.Fatalf("payment status: got %v, want PENDING", resp["payment_status"])
	}

	rec = f.do(t, http.MethodPatch, "/orders/"+id+"/payment-status", map[string]interface{}{
		"payment_status": enum.PaymentStatusPaid,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("set payment status: %d", rec.Code)
	}
	if resp := decodeOrder(t, rec); resp["payment_status"].(string) != enum.PaymentStatusPaid {
		t.Fatalf("payment status: got %v, want PAID", resp["payment_status"])
	}
}

func TestComplete_SkippingConfirmedRejected(t *testing.T) {
	f := setup(t)
	id := placePresetOrder(t, f)

	rec := f.do(t, http.MethodPost, "/orders/"+id+"/complete", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want 409", rec.Code)
	}
}

func TestQuoteEdit_LockedAfterCompletion(t *testing.T) {
	f := setup(t)
	id := placePresetOrder(t, f)
	f.do(t, http.MethodPost, "/orders/"+id+"/accept", nil)
	f.do(t, http.MethodPost, "/orders/"+id+"/complete", nil)

	rec := f.do(t, http.MethodPost, "/orders/"+id+"/costs", map[string]interface{}{
		"type":   enum.CostTypeDecoration,
		"amount": "3000",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want 409", rec.Code)
	}
}

// --- Documents ---

func TestDocumentDownload(t *testing.T) {
	f := setup(t)
	id := placePresetOrder(t, f)

	rec := f.do(t, http.MethodGet, "/orders/"+id+"/document", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type: got %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "Anand_14-02-2030_Quote.pdf") {
		t.Fatalf("content disposition: got %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body does not look like a PDF")
	}
}

func TestDocumentDownload_BillAfterCompletion(t *testing.T) {
	f := setup(t)
	id := placePresetOrder(t, f)
	f.do(t, http.MethodPost, "/orders/"+id+"/accept", nil)
	f.do(t, http.MethodPost, "/orders/"+id+"/complete", nil)

	rec := f.do(t, http.MethodGet, "/orders/"+id+"/document", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "_Bill.pdf") {
		t.Fatalf("completed order must download a bill, got %q", cd)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	f := setup(t)
	rec := f.do(t, http.MethodGet, "/orders/"+uuid.NewString(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}

func TestListOrders(t *testing.T) {
	f := setup(t)
	placePresetOrder(t, f)

	rec := f.do(t, http.MethodGet, "/orders", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp []map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("orders: got %d, want 1", len(resp))
	}
}
