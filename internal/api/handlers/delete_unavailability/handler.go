package delete_unavailability

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	"github.com/ciphersage74/elegancecoiffure/internal/service/schedule"
)

const (
	msgInvalidID     = "identifiant de période invalide"
	msgPeriodMissing = "période d'indisponibilité introuvable"
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

// Handle DELETE /api/v1/admin/unavailability/{unavailabilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "unavailabilityId")
	if err != nil {
		h.logger.Warn("DELETE /admin/unavailability/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteUnavailability(r.Context(), id); err != nil {
		if errors.Is(err, schedule.ErrUnavailabilityNotFound) {
			h.logger.Warn("DELETE /admin/unavailability/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgPeriodMissing)
			return
		}
		h.logger.Error("DELETE /admin/unavailability/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/unavailability/{id} - Deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
