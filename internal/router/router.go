package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/document"
	"github.com/jms-catering/api/internal/handler"
	"github.com/jms-catering/api/internal/order"
	"github.com/jms-catering/api/internal/service"
)

// New creates a Chi router with all application routes wired up.
func New(orders order.Repository, cat catalog.Store, renderer *document.PDFRenderer) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"}, // customer/admin dev server
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	intake := service.NewIntakeService(orders, cat)
	quote := service.NewQuoteService(orders)
	lifecycle := service.NewLifecycleService(orders, service.CountBillSequence{Store: orders})
	insights := service.NewInsightsService(orders)

	orderHandler := handler.NewOrderHandler(orders, cat, intake, quote, lifecycle, renderer)
	r.Route("/orders", orderHandler.RegisterRoutes)

	menuHandler := handler.NewMenuHandler(cat)
	r.Route("/menu-items", menuHandler.RegisterRoutes)

	presetHandler := handler.NewPresetHandler(cat)
	r.Route("/preset-menus", presetHandler.RegisterRoutes)

	reportsHandler := handler.NewReportsHandler(insights)
	r.Route("/reports", reportsHandler.RegisterRoutes)

	return r
}
