package booking

import (
	"log/slog"
	"net/http"

	"github.com/tripgenie/tripgenie-api/internal/lib"
	"github.com/tripgenie/tripgenie-api/internal/types"
)

type Handler struct {
	svc    Service
	logger *slog.Logger
}

func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

type buildItemsRequest struct {
	Itinerary types.Itinerary `json:"itinerary"`
}

type buildItemsResponse struct {
	Items     []types.BookingItem `json:"items"`
	TotalCost float64             `json:"total_cost"`
}

// BuildItems handles POST /api/v1/bookings.
func (h *Handler) BuildItems(w http.ResponseWriter, r *http.Request) {
	var req buildItemsRequest
	if err := lib.DecodeJSON(r, &req); err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}

	items := h.svc.BuildItems(req.Itinerary)
	lib.RespondJSON(w, http.StatusOK, buildItemsResponse{
		Items:     items,
		TotalCost: h.svc.TotalCost(items),
	})
}

type confirmRequest struct {
	Items   []types.BookingItem  `json:"items"`
	Payment types.PaymentDetails `json:"payment"`
}

// Confirm handles POST /api/v1/bookings/confirm.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := lib.DecodeJSON(r, &req); err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}

	confirmation, err := h.svc.Confirm(r.Context(), req.Items, req.Payment)
	if err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}
	lib.RespondJSON(w, http.StatusOK, confirmation)
}
