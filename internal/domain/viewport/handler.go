package viewport

import (
	"log/slog"
	"net/http"

	"github.com/tripgenie/tripgenie-api/internal/lib"
	"github.com/tripgenie/tripgenie-api/internal/types"
)

// Handler exposes map-view resolution and widget configuration over REST.
type Handler struct {
	svc    Service
	widget WidgetConfig
	logger *slog.Logger
}

func NewHandler(svc Service, widget WidgetConfig, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		widget: widget,
		logger: logger,
	}
}

type resolveRequest struct {
	Itinerary   types.Itinerary `json:"itinerary"`
	ActiveDay   int             `json:"active_day,omitempty"`
	ShowAllDays bool            `json:"show_all_days,omitempty"`
}

// ResolveMapView handles POST /api/v1/viewport.
func (h *Handler) ResolveMapView(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := lib.DecodeJSON(r, &req); err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}

	view, err := h.svc.ResolveMapView(r.Context(), req.Itinerary, Options{
		ActiveDay:   req.ActiveDay,
		ShowAllDays: req.ShowAllDays,
	})
	if err != nil {
		lib.RespondError(w, h.logger, err)
		return
	}
	lib.RespondJSON(w, http.StatusOK, view)
}

// GetWidgetConfig handles GET /api/v1/map/config.
func (h *Handler) GetWidgetConfig(w http.ResponseWriter, _ *http.Request) {
	lib.RespondJSON(w, http.StatusOK, h.widget)
}
