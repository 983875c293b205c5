package add_unavailability

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	"github.com/ciphersage74/elegancecoiffure/internal/service/schedule"
)

const (
	msgInvalidStaffID     = "identifiant de coiffeur invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidPeriod      = "période d'indisponibilité invalide"
	msgStaffNotFound      = "coiffeur introuvable"
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

// Handle POST /api/v1/admin/staff/{staffId}/unavailability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("POST /admin/staff/{id}/unavailability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req AddUnavailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/staff/{id}/unavailability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	period, err := h.service.AddUnavailability(r.Context(), req.ToServiceRequest(staffID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/staff/{id}/unavailability - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("POST /admin/staff/{id}/unavailability - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)
		default:
			h.logger.Error("POST /admin/staff/{id}/unavailability - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/staff/{id}/unavailability - Period added: id=%d, staff_id=%d, date=%s", period.ID, staffID, period.Date)
	handlers.RespondJSON(w, http.StatusCreated, period)
}
