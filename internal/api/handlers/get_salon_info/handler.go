package get_salon_info

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	"github.com/ciphersage74/elegancecoiffure/internal/service/salon"
)

const msgSalonNotConfigured = "informations du salon non configurées"

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

// Handle GET /api/v1/salon/info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetInfo(r.Context())
	if err != nil {
		if errors.Is(err, salon.ErrSalonInfoNotFound) {
			h.logger.Warn("GET /salon/info - Salon info not configured")
			handlers.RespondNotFound(w, msgSalonNotConfigured)
			return
		}
		h.logger.Error("GET /salon/info - Failed to get salon info: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
