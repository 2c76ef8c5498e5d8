package currency

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tipsplit/pkg/response"
)

// Handler handles HTTP requests for the currency directory
type Handler struct {
	service *Service
}

// NewHandler creates a new currency handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for currency endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}", h.UpdateRate)

	return r
}

// List handles GET /currency
// @Summary      List currencies
// @Description  Get every currency in the directory with its exchange rate relative to the base unit
// @Tags         currency
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]CurrencyResponse}
// @Router       /currency [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list currencies")
		return
	}

	resp := make([]*CurrencyResponse, len(currencies))
	for i, c := range currencies {
		resp[i] = c.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// GetByID handles GET /currency/{id}
// @Summary      Get currency by ID
// @Tags         currency
// @Produce      json
// @Param        id path int true "Currency ID"
// @Success      200 {object} response.APIResponse{data=CurrencyResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /currency/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid currency ID")
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCurrencyNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get currency")
		return
	}

	response.JSON(w, http.StatusOK, c.ToResponse())
}

// Create handles POST /currency
// @Summary      Add a currency
// @Tags         currency
// @Accept       json
// @Produce      json
// @Param        request body CreateCurrencyRequest true "Currency"
// @Success      201 {object} response.APIResponse{data=CurrencyResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /currency [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCurrencyRequest
	if !response.Decode(w, r, &req) {
		return
	}

	c, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to create currency")
		return
	}

	response.JSON(w, http.StatusCreated, c.ToResponse())
}

// UpdateRate handles PATCH /currency/{id}
// @Summary      Update exchange rate
// @Description  Set a new exchange rate; the rate must be positive
// @Tags         currency
// @Accept       json
// @Produce      json
// @Param        id path int true "Currency ID"
// @Param        request body UpdateRateRequest true "New rate"
// @Success      200 {object} response.APIResponse{data=CurrencyResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /currency/{id} [patch]
func (h *Handler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid currency ID")
		return
	}

	var req UpdateRateRequest
	if !response.Decode(w, r, &req) {
		return
	}

	c, err := h.service.UpdateRate(r.Context(), id, req.ExchangeRate)
	if err != nil {
		if errors.Is(err, ErrCurrencyNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update exchange rate")
		return
	}

	response.JSON(w, http.StatusOK, c.ToResponse())
}
