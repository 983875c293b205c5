package get_working_hours

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	"github.com/ciphersage74/elegancecoiffure/internal/service/schedule"
)

const (
	msgInvalidStaffID = "identifiant de coiffeur invalide"
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

// Handle GET /api/v1/admin/staff/{staffId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /admin/staff/{id}/hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	resp, err := h.service.GetWorkingHours(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, schedule.ErrStaffNotFound) {
			h.logger.Warn("GET /admin/staff/{id}/hours - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)
			return
		}
		h.logger.Error("GET /admin/staff/{id}/hours - Failed: staff_id=%d, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
