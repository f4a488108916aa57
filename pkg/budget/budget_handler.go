package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fintrack/fintrack/internal/rest"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	ID           int    `json:"id"`
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Year         *int   `json:"year"`
	Month        *int   `json:"month"`
	Limit        string `json:"limit"`
	Spent        string `json:"spent,omitempty"`
	Exceeded     bool   `json:"exceeded,omitempty"`
}

type BudgetFormDTO struct {
	CategoryID *int   `json:"categoryId"`
	Year       *int   `json:"year"`
	Month      *int   `json:"month"`
	Limit      string `json:"limit"`
}

type Handler struct {
	budgetService Service
	clock         utils.Clock
}

func NewHandler(budgetService Service, clock utils.Clock) *Handler {
	return &Handler{budgetService, clock}
}

// List godoc
// @Summary List the current user's budgets with spending for a period
// @Tags Budget
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param month query int false "Month (1-12), defaults to the current one"
// @Success 200 {array} BudgetDTO
// @Router /api/budgets [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	year, month := utils.ResolvePeriod(h.clock.Now(), r.URL.Query().Get("year"), r.URL.Query().Get("month"))

	budgets, err := h.budgetService.ListWithSpending(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]BudgetDTO, 0, len(budgets))
	for _, budget := range budgets {
		dtos = append(dtos, toDTOWithSpending(budget))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// Create godoc
// @Summary Create a budget
// @Tags Budget
// @Accept json
// @Produce json
// @Param budget body BudgetFormDTO true "Budget"
// @Success 201 {object} BudgetDTO
// @Failure 422 {object} rest.ValidationErrorResponse
// @Router /api/budgets [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new budget")

	form, ok := decodeForm(w, r)
	if !ok {
		return
	}
	budget, fields := form.Parse()
	if fields != nil {
		rest.WriteValidationError(w, fields)
		return
	}

	created, err := h.budgetService.Create(r.Context(), budget)
	if err != nil {
		if writeServiceError(w, err) {
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, toDTO(created))
}

// Update godoc
// @Summary Update a budget
// @Tags Budget
// @Accept json
// @Produce json
// @Param id path int true "Budget ID"
// @Param budget body BudgetFormDTO true "Budget"
// @Success 200 {object} BudgetDTO
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/budgets/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid budget id")
		return
	}

	form, ok := decodeForm(w, r)
	if !ok {
		return
	}
	budget, fields := form.Parse()
	if fields != nil {
		rest.WriteValidationError(w, fields)
		return
	}
	budget.ID = id

	updated, err := h.budgetService.Update(r.Context(), budget)
	if err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Budget not found")
			return
		}
		if writeServiceError(w, err) {
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toDTO(updated))
}

// Delete godoc
// @Summary Delete a budget
// @Tags Budget
// @Param id path int true "Budget ID"
// @Success 204
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/budgets/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid budget id")
		return
	}

	ok, err := h.budgetService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Budget not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) bool {
	if errors.Is(err, ErrCategoryNotAllowed) {
		rest.WriteValidationError(w, map[string]string{"categoryId": "Unknown category"})
		return true
	}
	if errors.Is(err, ErrDuplicateBudget) {
		rest.WriteValidationError(w, map[string]string{"categoryId": "A budget for this category and period already exists"})
		return true
	}
	return false
}

func decodeForm(w http.ResponseWriter, r *http.Request) (Form, bool) {
	var dto BudgetFormDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return Form{}, false
	}
	return Form{
		CategoryID: dto.CategoryID,
		Year:       dto.Year,
		Month:      dto.Month,
		Limit:      dto.Limit,
	}, true
}

func toDTO(budget Budget) BudgetDTO {
	return BudgetDTO{
		ID:           budget.ID,
		CategoryID:   budget.CategoryID,
		CategoryName: budget.CategoryName,
		Year:         budget.Year,
		Month:        budget.Month,
		Limit:        budget.Limit.StringFixed(2),
	}
}

func toDTOWithSpending(budget WithSpending) BudgetDTO {
	dto := toDTO(budget.Budget)
	dto.Spent = budget.Spent.StringFixed(2)
	dto.Exceeded = budget.Exceeded()
	return dto
}
