package participant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tipsplit/internal/bill"
	"github.com/fkhayef/tipsplit/pkg/response"
)

// Handler handles HTTP requests for participant operations
type Handler struct {
	service *Service
}

// NewHandler creates a new participant handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for participant endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Replace)
	r.Get("/bill/{billId}", h.ListByBill)
	r.Delete("/bill/{billId}", h.DeleteByBill)

	return r
}

// ReplaceResponse is the saved participant set with its allocation
type ReplaceResponse struct {
	Participants []*ParticipantResponse `json:"participants"`
	Allocation   *bill.BillResponse     `json:"allocation"`
}

// Replace handles POST /participant
// @Summary      Replace a bill's participants
// @Description  Delete the bill's participants and create the given set in one transaction.
// @Description  Rejected when custom claims exceed the tip pool unless allow_overallocation is set.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body ReplaceParticipantsRequest true "New participant set"
// @Success      201 {object} response.APIResponse{data=ReplaceResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /participant [post]
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	var req ReplaceParticipantsRequest
	if !response.Decode(w, r, &req) {
		return
	}

	participants, allocation, err := h.service.Replace(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bill.ErrBillNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, bill.ErrConflictingOverride), errors.Is(err, bill.ErrUnknownCurrency):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrOverallocated):
			response.Conflict(w, err.Error())
		case errors.Is(err, ErrInvalidAllocation):
			response.UnprocessableEntity(w, err.Error())
		default:
			response.InternalError(w, "Failed to save participants")
		}
		return
	}

	response.JSON(w, http.StatusCreated, &ReplaceResponse{
		Participants: toResponses(participants),
		Allocation:   allocation.ToResponse(),
	})
}

// ListByBill handles GET /participant/bill/{billId}
// @Summary      List a bill's participants
// @Tags         participants
// @Produce      json
// @Param        billId path int true "Bill ID"
// @Success      200 {object} response.APIResponse{data=[]ParticipantResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /participant/bill/{billId} [get]
func (h *Handler) ListByBill(w http.ResponseWriter, r *http.Request) {
	billID, err := strconv.ParseInt(chi.URLParam(r, "billId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	participants, err := h.service.ListByBillID(r.Context(), billID)
	if err != nil {
		if errors.Is(err, bill.ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list participants")
		return
	}

	response.JSON(w, http.StatusOK, toResponses(participants))
}

// DeleteByBill handles DELETE /participant/bill/{billId}
// @Summary      Delete a bill's participants
// @Tags         participants
// @Produce      json
// @Param        billId path int true "Bill ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /participant/bill/{billId} [delete]
func (h *Handler) DeleteByBill(w http.ResponseWriter, r *http.Request) {
	billID, err := strconv.ParseInt(chi.URLParam(r, "billId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	deleted, err := h.service.DeleteByBillID(r.Context(), billID)
	if err != nil {
		if errors.Is(err, bill.ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete participants")
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
