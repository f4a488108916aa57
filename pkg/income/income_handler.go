package income

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

type IncomeDTO struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type IncomeFormDTO struct {
	Title  string `json:"title"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Notes  string `json:"notes"`
}

type Handler struct {
	incomeService Service
}

func NewHandler(incomeService Service) *Handler {
	return &Handler{incomeService}
}

// List godoc
// @Summary List the current user's income entries, newest first
// @Tags Income
// @Produce json
// @Success 200 {array} IncomeDTO
// @Router /api/income [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	incomes, err := h.incomeService.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]IncomeDTO, 0, len(incomes))
	for _, income := range incomes {
		dtos = append(dtos, ToDTO(income))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// Create godoc
// @Summary Record an income entry
// @Tags Income
// @Accept json
// @Produce json
// @Param income body IncomeFormDTO true "Income"
// @Success 201 {object} IncomeDTO
// @Failure 422 {object} rest.ValidationErrorResponse
// @Router /api/income [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new income entry")

	form, ok := decodeForm(w, r)
	if !ok {
		return
	}
	income, fields := form.Parse()
	if fields != nil {
		rest.WriteValidationError(w, fields)
		return
	}

	created, err := h.incomeService.Create(r.Context(), income)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, ToDTO(created))
}

// Update godoc
// @Summary Update an income entry
// @Tags Income
// @Accept json
// @Produce json
// @Param id path int true "Income ID"
// @Param income body IncomeFormDTO true "Income"
// @Success 200 {object} IncomeDTO
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/income/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid income id")
		return
	}

	form, ok := decodeForm(w, r)
	if !ok {
		return
	}
	income, fields := form.Parse()
	if fields != nil {
		rest.WriteValidationError(w, fields)
		return
	}
	income.ID = id

	updated, err := h.incomeService.Update(r.Context(), income)
	if err != nil {
		if errors.Is(err, ErrIncomeNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Income not found")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusOK, ToDTO(updated))
}

// Delete godoc
// @Summary Delete an income entry
// @Tags Income
// @Param id path int true "Income ID"
// @Success 204
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/income/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid income id")
		return
	}

	ok, err := h.incomeService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Income not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeForm(w http.ResponseWriter, r *http.Request) (Form, bool) {
	var dto IncomeFormDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return Form{}, false
	}
	return Form{
		Title:  dto.Title,
		Amount: dto.Amount,
		Date:   dto.Date,
		Notes:  dto.Notes,
	}, true
}

func ToDTO(income Income) IncomeDTO {
	return IncomeDTO{
		ID:        income.ID,
		Title:     income.Title,
		Amount:    income.Amount.StringFixed(2),
		Date:      income.Date.Format(utils.DateFormat),
		Notes:     income.Notes,
		CreatedAt: income.CreatedAt,
	}
}
