package list_unavailability

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	"github.com/ciphersage74/elegancecoiffure/internal/service/schedule"
)

const (
	msgInvalidStaffID = "identifiant de coiffeur invalide"
	msgInvalidFrom    = "date de début invalide, format attendu AAAA-MM-JJ"
	msgStaffNotFound  = "coiffeur introuvable"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/staff/{staffId}/unavailability?from=2025-10-01
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /admin/staff/{id}/unavailability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	resp, err := h.service.ListUnavailability(r.Context(), staffID, r.URL.Query().Get("from"))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /admin/staff/{id}/unavailability - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("GET /admin/staff/{id}/unavailability - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)
		default:
			h.logger.Error("GET /admin/staff/{id}/unavailability - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
