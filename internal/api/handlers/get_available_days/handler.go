package get_available_days

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	getAvailableDays "github.com/ciphersage74/elegancecoiffure/internal/usecase/get_available_days"
)

const (
	msgInvalidServiceID = "identifiant de prestation invalide"
	msgInvalidStaffID   = "identifiant de coiffeur invalide"
	msgInvalidDates     = "dates invalides, format attendu AAAA-MM-JJ"
	msgRangeTooLong     = "période demandée trop longue"
	msgServiceNotFound  = "prestation introuvable"
	msgStaffNotFound    = "coiffeur introuvable"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/days
// Query params: serviceId, startDate, endDate (required), staffId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.QueryInt64(r, "serviceId", 0)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /availability/days - Invalid service ID: %q", r.URL.Query().Get("serviceId"))
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	staffID, err := handlers.QueryInt64(r, "staffId", 0)
	if err != nil || staffID < 0 {
		h.logger.Warn("GET /availability/days - Invalid staff ID: %q", r.URL.Query().Get("staffId"))
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	startDate, err := handlers.QueryDate(r, "startDate")
	if err != nil {
		h.logger.Warn("GET /availability/days - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	endDate, err := handlers.QueryDate(r, "endDate")
	if err != nil {
		h.logger.Warn("GET /availability/days - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDays.Request{
		ServiceID: serviceID,
		StaffID:   staffID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrServiceNotFound):
			h.logger.Warn("GET /availability/days - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableDays.ErrStaffNotFound):
			h.logger.Warn("GET /availability/days - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableDays.ErrRangeTooLong):
			h.logger.Warn("GET /availability/days - Range too long: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /availability/days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		default:
			h.logger.Error("GET /availability/days - Failed to get days: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/days - Days retrieved: service_id=%d, staff_id=%d, days_count=%d",
		serviceID, staffID, len(result.AvailableDays))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
