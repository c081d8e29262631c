package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/catalog-tracker/docs"
	"github.com/rogerio-castellano/catalog-tracker/internal/http/handlers"
	mw "github.com/rogerio-castellano/catalog-tracker/internal/http/middleware"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(mw.WithRequestID)
	r.Use(mw.WithLogging)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit)

		r.Route("/produtos", func(r chi.Router) {
			r.Get("/", handlers.GetProductsHandler)
			r.Post("/", handlers.CreateProductHandler)
			r.Get("/categoria/{categoriaId}", handlers.GetProductsByCategoryHandler)
			r.Get("/{id}", handlers.GetProductByIDHandler)
			r.Put("/{id}", handlers.UpdateProductHandler)
			r.Delete("/{id}", handlers.DeleteProductHandler)
		})

		r.Route("/categorias", func(r chi.Router) {
			r.Get("/", handlers.GetCategoriesHandler)
			r.Post("/", handlers.CreateCategoryHandler)
			r.Get("/{id}", handlers.GetCategoryByIDHandler)
			r.Delete("/{id}", handlers.DeleteCategoryHandler)
		})

		r.Get("/relatorios/resumo", handlers.GetReportSummaryHandler)
		r.Get("/dashboard", handlers.GetDashboardHandler)
	})

	return r
}
