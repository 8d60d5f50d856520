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

// categoryRequest is the request body for POST /categories and PUT
// /categories/{id}.
type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// CategoryHandler handles category CRUD endpoints.
type CategoryHandler struct {
	repo catalog.Repository[*catalog.Category]
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(repo catalog.Repository[*catalog.Category]) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

func (h *CategoryHandler) decode(w http.ResponseWriter, r *http.Request) (*categoryRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Request body must be valid JSON")
		return nil, false
	}

	req.Name = strings.TrimSpace(req.Name)

	fieldErrors := validation.ValidateCategoryInput(validation.CategoryInput{Name: req.Name})
	if len(fieldErrors) > 0 {
		response.BadRequest(w, validation.Join(fieldErrors))
		return nil, false
	}

	return &req, true
}

func (req *categoryRequest) apply(c *catalog.Category) {
	c.Name = req.Name
	c.Description = req.Description
	c.ImageURL = req.ImageURL
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	c := catalog.NewCategory()
	req.apply(c)

	stored, err := h.repo.Add(r.Context(), c)
	if err != nil {
		slog.Error("failed to create category", "error", err, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to create category")
		return
	}

	response.JSON(w, http.StatusCreated, stored)
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to list categories")
		return
	}

	response.JSON(w, http.StatusOK, categories)
}

// GetByID handles GET /categories/{id}.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to get category", "error", err, "id", id, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to get category")
		return
	}
	if c == nil {
		response.NotFound(w, "Category not found")
		return
	}

	response.JSON(w, http.StatusOK, c)
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to load category for update", "error", err, "id", id, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to update category")
		return
	}
	if existing == nil {
		response.NotFound(w, "Category not found")
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	req.apply(existing)

	if err := h.repo.Update(r.Context(), existing); err != nil {
		slog.Error("failed to update category", "error", err, "id", id, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to update category")
		return
	}

	response.JSON(w, http.StatusOK, existing)
}

// Delete handles DELETE /categories/{id}. Deleting an absent id still
// returns 204.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete category", "error", err, "id", id, "requestId", middleware.GetRequestID(r.Context()))
		response.Internal(w, "Failed to delete category")
		return
	}

	response.NoContent(w)
}
