package trips

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

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

func (h *Handler) tripID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid trip id", types.ErrBadRequest)
	}
	return id, nil
}

// GetTrip handles GET /api/v1/trips/{id}.
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := h.tripID(r)
	if err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}

	record, err := h.svc.GetTrip(r.Context(), id)
	if err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}
	lib.RespondJSON(w, http.StatusOK, record)
}

// ListRecent handles GET /api/v1/trips.
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			lib.RespondError(w, h.logger, fmt.Errorf("%w: invalid limit", types.ErrBadRequest))
			return
		}
		limit = parsed
	}

	records, err := h.svc.RecentTrips(r.Context(), limit)
	if err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}
	lib.RespondJSON(w, http.StatusOK, records)
}

type shareResponse struct {
	Summary  *types.ShareSummary `json:"summary"`
	ShareURL string              `json:"share_url"`
}

// ShareTrip handles GET /api/v1/trips/{id}/share.
func (h *Handler) ShareTrip(w http.ResponseWriter, r *http.Request) {
	id, err := h.tripID(r)
	if err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}

	summary, shareURL, err := h.svc.ShareTrip(r.Context(), id)
	if err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}
	lib.RespondJSON(w, http.StatusOK, shareResponse{Summary: summary, ShareURL: shareURL})
}
