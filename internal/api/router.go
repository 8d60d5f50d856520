// Package api wires the HTTP surface: middleware chain, authorization
// gate and entity routes.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/catalog14/catalog/internal/api/handler"
	"github.com/catalog14/catalog/internal/api/middleware"
	"github.com/catalog14/catalog/internal/api/response"
	"github.com/catalog14/catalog/internal/auth"
	"github.com/catalog14/catalog/internal/catalog"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	AuthService *auth.Service
	ExemptPaths []string
	Pinger      handler.StorePinger
	Backend     string
	Version     string
	Products    catalog.Repository[*catalog.Product]
	Categories  catalog.Repository[*catalog.Category]
	OpenAPISpec []byte
}

// NewRouter creates and configures a Chi router with all middleware and
// routes. The auth gate runs on every request; the exempt allow-list is
// the only way around it.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Auth(deps.AuthService, deps.ExemptPaths))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{
			"service": "catalog-api",
			"version": deps.Version,
		})
	})

	healthHandler := handler.NewHealthHandler(deps.Pinger, deps.Backend, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	authHandler := handler.NewAuthHandler(deps.AuthService)
	r.Route("/auth", func(r chi.Router) {
		r.Get("/me", authHandler.Me)
		r.Post("/validate", authHandler.Validate)
	})

	productHandler := handler.NewProductHandler(deps.Products)
	r.Route("/products", func(r chi.Router) {
		r.With(middleware.RequireRole(auth.RoleViewer)).Get("/", productHandler.List)
		r.With(middleware.RequireRole(auth.RoleViewer)).Get("/{id}", productHandler.GetByID)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Post("/", productHandler.Create)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Put("/{id}", productHandler.Update)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Delete("/{id}", productHandler.Delete)
	})

	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	r.Route("/categories", func(r chi.Router) {
		r.With(middleware.RequireRole(auth.RoleViewer)).Get("/", categoryHandler.List)
		r.With(middleware.RequireRole(auth.RoleViewer)).Get("/{id}", categoryHandler.GetByID)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Post("/", categoryHandler.Create)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Put("/{id}", categoryHandler.Update)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Delete("/{id}", categoryHandler.Delete)
	})

	return r
}
