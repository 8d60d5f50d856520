package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/catalog14/catalog/internal/api/middleware"
	"github.com/catalog14/catalog/internal/api/response"
	"github.com/catalog14/catalog/internal/api/validation"
	"github.com/catalog14/catalog/internal/catalog"
)

// productRequest is the request body for POST /products and PUT
// /products/{id}.
type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"imageUrl"`
	CategoryID  string  `json:"categoryId"`
	Stock       int     `json:"stock"`
	IsPublished bool    `json:"isPublished"`
}

// ProductHandler handles product CRUD endpoints.
type ProductHandler struct {
	repo catalog.Repository[*catalog.Product]
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(repo catalog.Repository[*catalog.Product]) *ProductHandler {
	return &ProductHandler{repo: repo}
}

func (h *ProductHandler) decode(w http.ResponseWriter, r *http.Request) (*productRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Request body must be valid JSON")
		return nil, false
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Currency == "" {
		req.Currency = "USD"
	}

	fieldErrors := validation.ValidateProductInput(validation.ProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Currency: req.Currency,
		Stock:    req.Stock,
	})
	if len(fieldErrors) > 0 {
		response.BadRequest(w, validation.Join(fieldErrors))
		return nil, false
	}

	return &req, true
}

func (req *productRequest) apply(p *catalog.Product) {
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Currency = req.Currency
	p.ImageURL = req.ImageURL
	p.CategoryID = req.CategoryID
	p.Stock = req.Stock
	p.IsPublished = req.IsPublished
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	p := catalog.NewProduct()
	req.apply(p)

	stored, err := h.repo.Add(r.Context(), p)
	if err != nil {
		slog.Error("failed to create product", "error", err, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to create product")
		return
	}

	response.JSON(w, http.StatusCreated, stored)
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to list products", "error", err, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to list products")
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// GetByID handles GET /products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to get product", "error", err, "id", id, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to get product")
		return
	}
	if p == nil {
		response.NotFound(w, "Product not found")
		return
	}

	response.JSON(w, http.StatusOK, p)
}

// Update handles PUT /products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to load product for update", "error", err, "id", id, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to update product")
		return
	}
	if existing == nil {
		response.NotFound(w, "Product not found")
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	req.apply(existing)

	if err := h.repo.Update(r.Context(), existing); err != nil {
		slog.Error("failed to update product", "error", err, "id", id, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to update product")
		return
	}

	response.JSON(w, http.StatusOK, existing)
}

// Delete handles DELETE /products/{id}. Deleting an absent id still
// returns 204.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete product", "error", err, "id", id, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to delete product")
		return
	}

	response.NoContent(w)
}
