package get_admin_bookings

import (
	"errors"
	"net/http"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
	"github.com/ciphersage74/elegancecoiffure/internal/service/bookings"
	"github.com/ciphersage74/elegancecoiffure/internal/service/bookings/models"
)

const (
	msgInvalidDate    = "date invalide, format attendu AAAA-MM-JJ"
	msgInvalidStaffID = "identifiant de coiffeur invalide"
	msgInvalidStatus  = "statut invalide"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params (все опциональны): date, staffId, status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetAdminBookingsRequest{}
	query := r.URL.Query()

	if query.Get("date") != "" {
		date, err := handlers.QueryDate(r, "date")
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if query.Get("staffId") != "" {
		staffID, err := handlers.QueryInt64(r, "staffId", 0)
		if err != nil || staffID <= 0 {
			h.logger.Warn("GET /admin/bookings - Invalid staff ID: %q", query.Get("staffId"))
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.GetAdminBookings(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Returned %d bookings", len(resp.Bookings))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
