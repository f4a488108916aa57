package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fintrack/fintrack/internal/rest"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Amount       string    `json:"amount"`
	Date         string    `json:"date"`
	CategoryID   *int      `json:"categoryId,omitempty"`
	CategoryName string    `json:"categoryName,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ExpenseFormDTO struct {
	Title      string `json:"title"`
	Amount     string `json:"amount"`
	Date       string `json:"date"`
	CategoryID *int   `json:"categoryId"`
	Notes      string `json:"notes"`
}

type Handler struct {
	expenseService Service
}

func NewHandler(expenseService Service) *Handler {
	return &Handler{expenseService}
}

// List godoc
// @Summary List the current user's expenses, newest first
// @Tags Expense
// @Produce json
// @Success 200 {array} ExpenseDTO
// @Router /api/expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseService.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, ToDTO(expense))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// Create godoc
// @Summary Record an expense
// @Tags Expense
// @Accept json
// @Produce json
// @Param expense body ExpenseFormDTO true "Expense"
// @Success 201 {object} ExpenseDTO
// @Failure 422 {object} rest.ValidationErrorResponse
// @Router /api/expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new expense")

	form, ok := decodeForm(w, r)
	if !ok {
		return
	}
	expense, fields := form.Parse()
	if fields != nil {
		rest.WriteValidationError(w, fields)
		return
	}

	created, err := h.expenseService.Create(r.Context(), expense)
	if err != nil {
		if errors.Is(err, ErrCategoryNotAllowed) {
			rest.WriteValidationError(w, map[string]string{"categoryId": "Unknown category"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, ToDTO(created))
}

// Update godoc
// @Summary Update an expense
// @Tags Expense
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param expense body ExpenseFormDTO true "Expense"
// @Success 200 {object} ExpenseDTO
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/expenses/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	form, ok := decodeForm(w, r)
	if !ok {
		return
	}
	expense, fields := form.Parse()
	if fields != nil {
		rest.WriteValidationError(w, fields)
		return
	}
	expense.ID = id

	updated, err := h.expenseService.Update(r.Context(), expense)
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Expense not found")
			return
		}
		if errors.Is(err, ErrCategoryNotAllowed) {
			rest.WriteValidationError(w, map[string]string{"categoryId": "Unknown category"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusOK, ToDTO(updated))
}

// Delete godoc
// @Summary Delete an expense
// @Tags Expense
// @Param id path int true "Expense ID"
// @Success 204
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/expenses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	ok, err := h.expenseService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Expense not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeForm(w http.ResponseWriter, r *http.Request) (Form, bool) {
	var dto ExpenseFormDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return Form{}, false
	}
	return Form{
		Title:      dto.Title,
		Amount:     dto.Amount,
		Date:       dto.Date,
		CategoryID: dto.CategoryID,
		Notes:      dto.Notes,
	}, true
}

// ToDTO converts an expense for JSON responses; amounts stay strings to keep
// their exact decimal representation.
func ToDTO(expense Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:           expense.ID,
		Title:        expense.Title,
		Amount:       expense.Amount.StringFixed(2),
		Date:         expense.Date.Format(utils.DateFormat),
		CategoryID:   expense.CategoryID,
		CategoryName: expense.CategoryName,
		Notes:        expense.Notes,
		CreatedAt:    expense.CreatedAt,
	}
}
