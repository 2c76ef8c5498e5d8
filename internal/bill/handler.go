package bill

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tipsplit/pkg/response"
)

// Handler handles HTTP requests for bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	// Allocation of an unsaved participant list
	r.Post("/{id}/allocation", h.Preview)

	return r
}

func billID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Create handles POST /bills
// @Summary      Create a new bill
// @Description  Create a bill with an amount, an optional tip percent (fraction) and a currency
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body CreateBillRequest true "Bill creation request"
// @Success      201 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /bills [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if !response.Decode(w, r, &req) {
		return
	}

	b, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrUnknownCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create bill")
		return
	}

	response.JSON(w, http.StatusCreated, b.ToResponse())
}

// GetByID handles GET /bills/{id}
// @Summary      Get bill by ID
// @Description  Get a bill with its participants, their allocated tip and an allocation summary
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := billID(r)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	allocation, err := h.service.GetWithAllocation(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get bill")
		return
	}

	response.JSON(w, http.StatusOK, allocation.ToResponse())
}

// List handles GET /bills
// @Summary      List bills
// @Description  Get a paginated list of bills, newest first
// @Tags         bills
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]BillResponse}
// @Router       /bills [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	bills, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list bills")
		return
	}

	billResponses := make([]*BillResponse, len(bills))
	for i, b := range bills {
		billResponses[i] = b.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, billResponses, meta)
}

// Update handles PATCH /bills/{id}
// @Summary      Update a bill
// @Description  Update amount, tip percent or currency. Omitted fields are unchanged; remove_tip clears the tip.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id path int true "Bill ID"
// @Param        request body UpdateBillRequest true "Bill update request"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := billID(r)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	var req UpdateBillRequest
	if !response.Decode(w, r, &req) {
		return
	}

	b, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBillNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrUnknownCurrency):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update bill")
		}
		return
	}

	response.JSON(w, http.StatusOK, b.ToResponse())
}

// Delete handles DELETE /bills/{id}
// @Summary      Delete a bill
// @Tags         bills
// @Param        id path int true "Bill ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := billID(r)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete bill")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Bill deleted successfully"})
}

// Preview handles POST /bills/{id}/allocation
// @Summary      Preview a tip allocation
// @Description  Allocate the bill's tip over an unsaved participant list. Nothing is stored.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id path int true "Bill ID"
// @Param        request body PreviewAllocationRequest true "Participants to allocate"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id}/allocation [post]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	id, err := billID(r)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	var req PreviewAllocationRequest
	if !response.Decode(w, r, &req) {
		return
	}

	allocation, err := h.service.Preview(r.Context(), id, req.Participants)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to allocate tip")
		return
	}

	response.JSON(w, http.StatusOK, allocation.ToResponse())
}
