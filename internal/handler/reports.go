package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jms-catering/api/internal/service"
)

// ReportsHandler exposes the dashboard insights endpoint.
type ReportsHandler struct {
	insights *service.InsightsService
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(insights *service.InsightsService) *ReportsHandler {
	return &ReportsHandler{insights: insights}
}

// RegisterRoutes registers report endpoints on the given Chi router.
func (h *ReportsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/insights", h.Insights)
}

// Insights returns order counts, revenue and the trailing six-month volume.
func (h *ReportsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	summary, err := h.insights.Summarize(r.Context())
	if err != nil {
		writeServiceError(w, "summarize insights", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
