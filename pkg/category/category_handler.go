package category

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fintrack/fintrack/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Handler struct {
	categoryService Service
}

func NewHandler(categoryService Service) *Handler {
	return &Handler{categoryService}
}

// List godoc
// @Summary List the current user's categories
// @Tags Category
// @Produce json
// @Success 200 {array} CategoryDTO
// @Router /api/categories [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, CategoryDTO{ID: category.ID, Name: category.Name})
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// Create godoc
// @Summary Create a category
// @Tags Category
// @Accept json
// @Produce json
// @Param category body CategoryDTO true "Category"
// @Success 201 {object} CategoryDTO
// @Failure 422 {object} rest.ValidationErrorResponse
// @Router /api/categories [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new category")

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	form := Form{Name: dto.Name}
	if fields := form.Validate(); fields != nil {
		rest.WriteValidationError(w, fields)
		return
	}

	created, err := h.categoryService.Create(r.Context(), form.Category())
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			rest.WriteValidationError(w, map[string]string{"name": "Category with this name already exists"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, CategoryDTO{ID: created.ID, Name: created.Name})
}

// Update godoc
// @Summary Rename a category
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body CategoryDTO true "Category"
// @Success 200 {object} CategoryDTO
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/categories/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	form := Form{Name: dto.Name}
	if fields := form.Validate(); fields != nil {
		rest.WriteValidationError(w, fields)
		return
	}

	category := form.Category()
	category.ID = id
	updated, err := h.categoryService.Update(r.Context(), category)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		if errors.Is(err, ErrDuplicateName) {
			rest.WriteValidationError(w, map[string]string{"name": "Category with this name already exists"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusOK, CategoryDTO{ID: updated.ID, Name: updated.Name})
}

// Delete godoc
// @Summary Delete a category
// @Description Expenses in the category are kept and become uncategorized; budgets for it are removed.
// @Tags Category
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/categories/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	ok, err := h.categoryService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Category not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
