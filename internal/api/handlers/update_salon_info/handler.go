package update_salon_info

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	"github.com/ciphersage74/elegancecoiffure/internal/service/salon"
	"github.com/ciphersage74/elegancecoiffure/internal/service/salon/models"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidSalonInfo   = "le nom du salon est obligatoire"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/salon/info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSalonInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/salon/info - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.UpdateInfo(r.Context(), &req)
	if err != nil {
		if errors.Is(err, salon.ErrInvalidInput) {
			h.logger.Warn("PUT /admin/salon/info - Invalid salon info: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSalonInfo)
			return
		}
		h.logger.Error("PUT /admin/salon/info - Failed to update salon info: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/salon/info - Salon info updated: name=%s", resp.Name)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
