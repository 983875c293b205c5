package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	getAvailableSlots "github.com/ciphersage74/elegancecoiffure/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID  = "identifiant de prestation invalide"
	msgInvalidStaffID    = "identifiant de coiffeur invalide"
	msgInvalidDate       = "date invalide, format attendu AAAA-MM-JJ"
	msgServiceNotFound   = "prestation introuvable"
	msgStaffNotFound     = "coiffeur introuvable"
	msgStaffNotQualified = "ce coiffeur ne réalise pas cette prestation"
	msgInvalidRequest    = "requête invalide"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: serviceId (required), staffId (required, 0 - любой мастер), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.QueryInt64(r, "serviceId", 0)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /availability - Invalid service ID: %q", r.URL.Query().Get("serviceId"))
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	staffID, err := handlers.RequiredQueryInt64(r, "staffId")
	if err != nil || staffID < 0 {
		h.logger.Warn("GET /availability - Invalid staff ID: %q", r.URL.Query().Get("staffId"))
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("GET /availability - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotQualified):
			h.logger.Warn("GET /availability - Staff not qualified: staff_id=%d, service_id=%d", staffID, serviceID)
			handlers.RespondBadRequest(w, msgStaffNotQualified)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed to get slots: service_id=%d, staff_id=%d, error=%v",
				serviceID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots retrieved: service_id=%d, staff_id=%d, slots_count=%d",
		serviceID, staffID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
