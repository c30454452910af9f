package planner

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

// PlanTrip handles POST /api/v1/itineraries.
func (h *Handler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req types.TripRequest
	if err := lib.DecodeJSON(r, &req); err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}

	record, err := h.svc.PlanTrip(r.Context(), req)
	if err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}
	lib.RespondJSON(w, http.StatusCreated, record)
}
