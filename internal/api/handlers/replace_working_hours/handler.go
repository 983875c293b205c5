package replace_working_hours

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	"github.com/ciphersage74/elegancecoiffure/internal/service/schedule"
)

const (
	msgInvalidStaffID     = "identifiant de coiffeur invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidHours       = "horaires invalides"
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

// Handle PUT /api/v1/admin/staff/{staffId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("PUT /admin/staff/{id}/hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req ReplaceWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/staff/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.ReplaceWorkingHours(r.Context(), req.ToServiceRequest(staffID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/staff/{id}/hours - Invalid hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)
		case errors.Is(err, schedule.ErrStaffNotFound):
			h.logger.Warn("PUT /admin/staff/{id}/hours - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)
		default:
			h.logger.Error("PUT /admin/staff/{id}/hours - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/staff/{id}/hours - Replaced %d windows for staff_id=%d", len(resp.Hours), staffID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
